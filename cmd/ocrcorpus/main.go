//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/e-gun/OCRTopics/internal/corpus"
	"github.com/e-gun/OCRTopics/internal/lnch"
	"github.com/pkg/profile"
)

func main() {
	const (
		MSG1 = "%d source files found in %s"
		MSG2 = "%d identifiers built"
	)

	cc := lnch.ConfigAtLaunch(lnch.CorpusLoader, os.Args[1:])
	Msg := lnch.Msg

	if cc.ProfileCPU {
		p := profile.Start()
		lnch.StopBeforeExit(Msg, p.Stop)
		defer p.Stop()
	}

	start := time.Now()
	previous := time.Now()

	cfg := corpus.Config{OCRDir: cc.OCRDir, Ext: cc.OCRExt, IDMode: cc.IDMode, Encoding: cc.Encoding}
	Msg.EC(cfg.Validate())

	paths, err := corpus.FindSources(cc.DataDir, cfg)
	Msg.EC(err)
	Msg.Timer("A1", fmt.Sprintf(MSG1, len(paths), filepath.Join(cc.DataDir, cc.OCRDir)), start, previous)

	previous = time.Now()
	m, err := corpus.Build(paths, cfg)
	Msg.EC(err)
	Msg.Timer("A2", fmt.Sprintf(MSG2, m.Len()), start, previous)

	Msg.EC(corpus.WriteFile(filepath.Join(cc.DataDir, cc.OutFile), m))
	Msg.EC(corpus.WriteSummary(os.Stdout, len(paths), cc.OutFile))
}
