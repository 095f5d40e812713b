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
	"github.com/e-gun/OCRTopics/internal/nmf"
	"github.com/e-gun/OCRTopics/internal/topics"
	"github.com/e-gun/OCRTopics/internal/vec"
	"github.com/pkg/profile"
)

func main() {
	const (
		MSG1 = "%d documents read from %s"
		MSG2 = "html report written to %s"
		MSG3 = "stop words written to %s"
	)

	cc := lnch.ConfigAtLaunch(lnch.TopicExplorer, os.Args[1:])
	Msg := lnch.Msg
	lnch.UpdateMessageMakerWithConfig(vec.Msg)
	lnch.UpdateMessageMakerWithConfig(nmf.Msg)
	lnch.UpdateMessageMakerWithConfig(topics.Msg)

	if cc.WriteStops {
		fn := cc.StopFile
		if fn == "" {
			var err error
			fn, err = vec.DefaultStopFile()
			Msg.EC(err)
		}
		Msg.EC(vec.WriteStopConfig(fn))
		Msg.MAND(fmt.Sprintf(MSG3, fn))
		return
	}

	if cc.ProfileCPU {
		p := profile.Start()
		lnch.StopBeforeExit(Msg, p.Stop)
		defer p.Stop()
	}

	start := time.Now()
	previous := time.Now()

	src := filepath.Join(cc.DataDir, cc.OutFile)
	m, err := corpus.ReadFile(src)
	Msg.EC(err)
	Msg.Timer("B1", fmt.Sprintf(MSG1, m.Len(), src), start, previous)

	cfg := topics.ConfigFromCurrent(cc, vec.ReadStopConfig(cc.StopFile))
	res, err := topics.Run(m, cfg)
	Msg.EC(err)

	Msg.EC(topics.Print(os.Stdout, res))
	topics.LogDominantTopics(res)

	if cc.GraphFile != "" {
		rp := topics.Report{Width: cc.GraphWidth, Height: cc.GraphHeight}
		Msg.EC(rp.WriteHTMLFile(cc.GraphFile, res))
		Msg.NOTE(fmt.Sprintf(MSG2, cc.GraphFile))
	}
}
