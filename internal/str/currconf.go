//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool    `json:"BlackAndWhite" yaml:"black_and_white"`
	DataDir       string  `json:"DataDir" yaml:"data_dir"`
	Encoding      string  `json:"Encoding" yaml:"encoding"` // "utf8", "latin1", "cp1252"
	GraphFile     string  `json:"GraphFile" yaml:"graph_file"`
	GraphHeight   string  `json:"GraphHeight" yaml:"graph_height"`
	GraphWidth    string  `json:"GraphWidth" yaml:"graph_width"`
	IDMode        string  `json:"IDMode" yaml:"id_mode"` // "replace", "suffix", "pattern"
	LogLevel      int     `json:"LogLevel" yaml:"log_level"`
	NMFAlpha      float64 `json:"NMFAlpha" yaml:"nmf_alpha"`
	NMFInit       string  `json:"NMFInit" yaml:"nmf_init"`
	NMFL1Ratio    float64 `json:"NMFL1Ratio" yaml:"nmf_l1_ratio"`
	NMFMaxIter    int     `json:"NMFMaxIter" yaml:"nmf_max_iter"`
	NMFSeed       uint64  `json:"NMFSeed" yaml:"nmf_seed"`
	NMFTolerance  float64 `json:"NMFTolerance" yaml:"nmf_tolerance"`
	NMFTopics     int     `json:"NMFTopics" yaml:"nmf_topics"`
	NMFTopWords   int     `json:"NMFTopWords" yaml:"nmf_top_words"`
	OCRDir        string  `json:"OCRDir" yaml:"ocr_dir"`
	OCRExt        string  `json:"OCRExt" yaml:"ocr_ext"`
	OutFile       string  `json:"OutFile" yaml:"out_file"`
	ProfileCPU    bool    `json:"ProfileCPU" yaml:"profile_cpu"`
	StopFile      string  `json:"StopFile" yaml:"stop_file"`
	TfidfMaxDF    float64 `json:"TfidfMaxDF" yaml:"tfidf_max_df"`
	TfidfMaxDocs  int     `json:"TfidfMaxDocs" yaml:"tfidf_max_docs"`
	TfidfMaxFeat  int     `json:"TfidfMaxFeat" yaml:"tfidf_max_feat"`
	TfidfMinDF    int     `json:"TfidfMinDF" yaml:"tfidf_min_df"`
	TfidfMinToken int     `json:"TfidfMinToken" yaml:"tfidf_min_token"`
	WriteStops    bool    `json:"-" yaml:"-"`
}
