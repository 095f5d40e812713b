//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/e-gun/OCRTopics/internal/str"
	"github.com/e-gun/OCRTopics/internal/vv"
	"gopkg.in/yaml.v3"
)

// Program - which of the two executables is launching
type Program struct {
	Name  string
	Short string
	Help  string
}

// Action - what main should do once the command line has been read
type Action int

const (
	ActRun Action = iota
	ActHelp
	ActVersion
	ActFullVersion
)

var (
	Config = BuildDefaultConfig()
	Prog   = TopicExplorer
	Msg    = NewMessageMakerWithDefaults()

	CorpusLoader  = Program{Name: vv.LOADERNAME, Short: vv.LOADERSHORT, Help: vv.LOADERHELPTEMPLATE}
	TopicExplorer = Program{Name: vv.MYNAME, Short: vv.SHORTNAME, Help: vv.TOPICHELPTEMPLATE}

	ErrMissingValue = errors.New("switch requires a value")
	ErrBadValue     = errors.New("invalid value for switch")
)

// ConfigAtLaunch - defaults, then the config file, then the command line; help and version requests end the run here
func ConfigAtLaunch(p Program, args []string) *str.CurrentConfiguration {
	const (
		FAIL1 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		MSG1  = "'%s'%s loaded"
	)

	Prog = p
	Config = BuildDefaultConfig()
	UpdateMessageMakerWithConfig(Msg)

	cf, explicit := ConfigFileFromArgs(args)
	err := LoadConfigFile(Config, cf)
	y := ""
	if err != nil {
		y = " *not*"
		if explicit || !errors.Is(err, os.ErrNotExist) {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
			Msg.CRIT(err.Error())
			Config = BuildDefaultConfig()
		}
	}

	act, err := ParseArgs(Config, args)
	UpdateMessageMakerWithConfig(Msg)
	Msg.TMI(fmt.Sprintf(MSG1, cf, y))
	Msg.EC(err)

	switch act {
	case ActHelp:
		h, e := HelpText(p.Help, Config)
		Msg.EC(e)
		PrintVersion(os.Stdout, *Config)
		PrintBuildInfo(os.Stdout)
		fmt.Println(Msg.ColStyle(h))
		os.Exit(0)
	case ActVersion:
		fmt.Println(vv.VERSION + VersSuppl)
		os.Exit(0)
	case ActFullVersion:
		PrintVersion(os.Stdout, *Config)
		PrintBuildInfo(os.Stdout)
		os.Exit(0)
	}

	Msg.EC(CheckConfig(Config))
	return Config
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.DataDir = vv.DEFAULTDATADIR
	c.Encoding = vv.DEFAULTENCODING
	c.GraphFile = ""
	c.GraphHeight = vv.DEFAULTCHRTHT
	c.GraphWidth = vv.DEFAULTCHRTWD
	c.IDMode = vv.DEFAULTIDMODE
	c.LogLevel = vv.DEFAULTGOLOGLVL
	c.NMFAlpha = vv.NMFALPHA
	c.NMFInit = vv.NMFINIT
	c.NMFL1Ratio = vv.NMFL1RATIO
	c.NMFMaxIter = vv.NMFMAXITER
	c.NMFSeed = vv.NMFSEED
	c.NMFTolerance = vv.NMFTOLERANCE
	c.NMFTopics = vv.NMFTOPICS
	c.NMFTopWords = vv.NMFTOPWORDS
	c.OCRDir = vv.DEFAULTOCRDIR
	c.OCRExt = vv.DEFAULTOCREXT
	c.OutFile = vv.FULLTEXTDB
	c.ProfileCPU = false
	c.StopFile = ""
	c.TfidfMaxDF = vv.TFIDFMAXDF
	c.TfidfMaxDocs = vv.TFIDFMAXDOCS
	c.TfidfMaxFeat = vv.TFIDFMAXFEAT
	c.TfidfMinDF = vv.TFIDFMINDF
	c.TfidfMinToken = vv.TFIDFMINTOKEN
	return &c
}

// DefaultConfigFile - "~/.config/ocrtopics.json"
func DefaultConfigFile() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return vv.CONFIGBASIC
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC
}

// ConfigFileFromArgs - the "-cf" value if there is one, otherwise the default location
func ConfigFileFromArgs(args []string) (string, bool) {
	for i, a := range args {
		if a == "-cf" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return DefaultConfigFile(), false
}

// LoadConfigFile - overlay the values found in fn onto cc; YAML if the name says so, JSON otherwise
func LoadConfigFile(cc *str.CurrentConfiguration, fn string) error {
	content, err := os.ReadFile(fn)
	if err != nil {
		return err
	}

	loaded := *cc
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &loaded)
	default:
		err = json.Unmarshal(content, &loaded)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", fn, err)
	}

	*cc = loaded
	return nil
}

// ParseArgs - apply the command line switches to cc
func ParseArgs(cc *str.CurrentConfiguration, args []string) (Action, error) {
	const (
		WARN1 = "ignoring unknown switch '%s' (see -h)"
	)
	act := ActRun

	for i := 0; i < len(args); i++ {
		a := args[i]

		next := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%w: %s", ErrMissingValue, a)
			}
			i++
			return args[i], nil
		}
		nextint := func(target *int) error {
			v, err := next()
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s %q", ErrBadValue, a, v)
			}
			*target = n
			return nil
		}
		nextfloat := func(target *float64) error {
			v, err := next()
			if err != nil {
				return err
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s %q", ErrBadValue, a, v)
			}
			*target = f
			return nil
		}
		nextstring := func(target *string) error {
			v, err := next()
			if err != nil {
				return err
			}
			*target = v
			return nil
		}

		var err error
		switch a {
		case "-vv":
			act = ActFullVersion
		case "-v":
			act = ActVersion
		case "-h":
			act = ActHelp
		case "-al":
			err = nextfloat(&cc.NMFAlpha)
		case "-bw":
			cc.BlackAndWhite = true
		case "-cf":
			// already consumed by ConfigFileFromArgs()
			_, err = next()
		case "-dd":
			err = nextstring(&cc.DataDir)
		case "-en":
			err = nextstring(&cc.Encoding)
		case "-gl":
			err = nextint(&cc.LogLevel)
		case "-gr":
			err = nextstring(&cc.GraphFile)
		case "-id":
			err = nextstring(&cc.IDMode)
		case "-in":
			err = nextstring(&cc.NMFInit)
		case "-l1":
			err = nextfloat(&cc.NMFL1Ratio)
		case "-md":
			err = nextint(&cc.TfidfMaxDocs)
		case "-mf":
			err = nextint(&cc.TfidfMaxFeat)
		case "-mi":
			err = nextint(&cc.NMFMaxIter)
		case "-mn":
			err = nextint(&cc.TfidfMinDF)
		case "-mx":
			err = nextfloat(&cc.TfidfMaxDF)
		case "-nt":
			err = nextint(&cc.NMFTopics)
		case "-od":
			err = nextstring(&cc.OCRDir)
		case "-of":
			err = nextstring(&cc.OutFile)
		case "-pc":
			cc.ProfileCPU = true
		case "-sd":
			var v string
			if v, err = next(); err == nil {
				var s uint64
				if s, err = strconv.ParseUint(v, 10, 64); err != nil {
					err = fmt.Errorf("%w: %s %q", ErrBadValue, a, v)
				}
				cc.NMFSeed = s
			}
		case "-sw":
			err = nextstring(&cc.StopFile)
		case "-tw":
			err = nextint(&cc.NMFTopWords)
		case "-ws":
			cc.WriteStops = true
		default:
			if strings.HasPrefix(a, "-") {
				Msg.WARN(fmt.Sprintf(WARN1, a))
			}
		}
		if err != nil {
			return act, err
		}
	}
	return act, nil
}

// CheckConfig - refuse settings that can only fail later
func CheckConfig(cc *str.CurrentConfiguration) error {
	const (
		FAIL1 = "%w: %s must be positive (got %d)"
		FAIL2 = "%w: max df must be in (0, 1] (got %.3f)"
		FAIL3 = "%w: l1 ratio must be in [0, 1] (got %.3f)"
		FAIL4 = "%w: alpha must not be negative (got %.3f)"
	)

	for name, v := range map[string]int{"topics": cc.NMFTopics, "top words": cc.NMFTopWords,
		"max docs": cc.TfidfMaxDocs, "max iter": cc.NMFMaxIter} {
		if v <= 0 {
			return fmt.Errorf(FAIL1, ErrBadValue, name, v)
		}
	}
	if cc.TfidfMaxDF <= 0 || cc.TfidfMaxDF > 1 {
		return fmt.Errorf(FAIL2, ErrBadValue, cc.TfidfMaxDF)
	}
	if cc.NMFL1Ratio < 0 || cc.NMFL1Ratio > 1 {
		return fmt.Errorf(FAIL3, ErrBadValue, cc.NMFL1Ratio)
	}
	if cc.NMFAlpha < 0 {
		return fmt.Errorf(FAIL4, ErrBadValue, cc.NMFAlpha)
	}
	return nil
}

// HelpText - fill out a help template with the current settings; the result still carries color pseudo-tags
func HelpText(tmpl string, cc *str.CurrentConfiguration) (string, error) {
	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	m := map[string]interface{}{
		"alpha":    cc.NMFAlpha,
		"conffile": vv.CONFIGBASIC,
		"datadir":  cc.DataDir,
		"enc":      cc.Encoding,
		"home":     h,
		"idmode":   cc.IDMode,
		"init":     cc.NMFInit,
		"l1":       cc.NMFL1Ratio,
		"ll":       cc.LogLevel,
		"maxdf":    cc.TfidfMaxDF,
		"maxdocs":  cc.TfidfMaxDocs,
		"maxfeat":  cc.TfidfMaxFeat,
		"maxiter":  cc.NMFMaxIter,
		"mindf":    cc.TfidfMinDF,
		"ocrdir":   cc.OCRDir,
		"outfile":  cc.OutFile,
		"seed":     cc.NMFSeed,
		"stopfile": vv.CONFIGSTOPSENG,
		"topics":   cc.NMFTopics,
		"topwords": cc.NMFTopWords,
	}

	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	if err = t.Execute(&b, m); err != nil {
		return "", err
	}
	return b.String(), nil
}
