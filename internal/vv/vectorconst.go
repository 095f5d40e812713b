//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	NMFALPHA        = 0.1
	NMFINIT         = "nndsvd"
	NMFL1RATIO      = 0.5
	NMFMAXITER      = 200
	NMFSEED         = 1
	NMFTOLERANCE    = 1e-4
	NMFTOPICS       = 50
	NMFTOPWORDS     = 10
	TFIDFMAXDF      = 0.80
	TFIDFMAXDOCS    = 1000
	TFIDFMAXFEAT    = 1000
	TFIDFMINDF      = 10
	TFIDFMINTOKEN   = 2 // same as the usual \b\w\w+\b token pattern
	DEFAULTCHRTWD   = "900px"
	DEFAULTCHRTHT   = "400px"
	NMFEPSILON      = 1e-6 // nndsvd zeroes anything smaller than this
	TOPICHEADERTMPL = "Topic %d:"
)
