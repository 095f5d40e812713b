//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	PROJYEAR = "2022-24"
	PROJAUTH = "E. Gunderson"
	PROJURL  = "https://github.com/e-gun/OCRTopics"

	COMMONHELP = `   C1-bwC0          disable color output in the console
   C1-cfC0 C2{file}C0   read configuration from this file instead of "C3{{.home}}{{.conffile}}C0"
                   files ending in C3.yamlC0 or C3.ymlC0 are read as YAML; everything else as JSON
   C1-ddC0 C2{dir}C0    data directory [C6currentC0: C3{{.datadir}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.ll}}C0]
   C1-hC0           print this help information
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
`

	LOADERHELPTEMPLATE = `S3command line optionsS0:
` + COMMONHELP + `   C1-enC0 C2{string}C0 input encoding; available: C3utf8C0, C3latin1C0, C3cp1252C0 [C6currentC0: C3{{.enc}}C0]
   C1-idC0 C2{string}C0 identifier mode; available: C3replaceC0, C3suffixC0, C3patternC0 [C6currentC0: C3{{.idmode}}C0]
   C1-odC0 C2{dir}C0    subdirectory of the data directory holding the OCR files [C6currentC0: C3{{.ocrdir}}C0]
   C1-ofC0 C2{file}C0   name of the output file inside the data directory [C6currentC0: C3{{.outfile}}C0]
`

	TOPICHELPTEMPLATE = `S3command line optionsS0:
` + COMMONHELP + `   C1-alC0 C2{num}C0    regularization strength [C6currentC0: C3{{.alpha}}C0]
   C1-grC0 C2{file}C0   also write an html report with topic charts to this file
   C1-inC0 C2{string}C0 initialization; available: C3nndsvdC0, C3nndsvdaC0, C3randomC0 [C6currentC0: C3{{.init}}C0]
   C1-l1C0 C2{num}C0    L1/L2 mixing ratio [C6currentC0: C3{{.l1}}C0]
   C1-mdC0 C2{num}C0    maximum number of documents to model [C6currentC0: C3{{.maxdocs}}C0]
   C1-mfC0 C2{num}C0    maximum vocabulary size [C6currentC0: C3{{.maxfeat}}C0]
   C1-miC0 C2{num}C0    maximum number of iterations [C6currentC0: C3{{.maxiter}}C0]
   C1-mnC0 C2{num}C0    minimum document frequency of a term [C6currentC0: C3{{.mindf}}C0]
   C1-mxC0 C2{num}C0    maximum document fraction of a term [C6currentC0: C3{{.maxdf}}C0]
   C1-ntC0 C2{num}C0    number of topics [C6currentC0: C3{{.topics}}C0]
   C1-ofC0 C2{file}C0   name of the corpus file inside the data directory [C6currentC0: C3{{.outfile}}C0]
   C1-pcC0          enable CPU profiling run
   C1-sdC0 C2{num}C0    random seed [C6currentC0: C3{{.seed}}C0]
   C1-swC0 C2{file}C0   read the stop words from this JSON array instead of "C3{{.home}}{{.stopfile}}C0"
   C1-twC0 C2{num}C0    number of words to report per topic [C6currentC0: C3{{.topwords}}C0]
   C1-wsC0          write the built-in stop words to the stop file for editing and exit

     S1NB:S0 the topic model is built from "C3{{.datadir}}/{{.outfile}}C0"
`
)
