//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME        = "OCR Topic Explorer"
	SHORTNAME     = "OTE"
	LOADERNAME    = "OCR Corpus Loader"
	LOADERSHORT   = "OCL"
	VERSION       = "0.2.1"
	BLACKANDWHITE = false

	CONFIGALTAPTH    = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC      = "ocrtopics.json"
	CONFIGSTOPSENG   = "ocrtopics-stops-english.json"
	DEFAULTDATADIR   = "data"
	DEFAULTGOLOGLVL  = 0
	DEFAULTOCRDIR    = "ocr"
	DEFAULTOCREXT    = ".txt"
	DEFAULTENCODING  = "utf8"
	DEFAULTIDMODE    = "replace"
	FULLTEXTDB       = "fulltext_db.json"
	JSONINDENT       = "  "
	WRITEPERMS       = 0644
	TIMETRACKERTHRSH = 3 // MSGFYI
)
