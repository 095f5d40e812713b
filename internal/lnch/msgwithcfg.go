//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"os"

	"github.com/e-gun/OCRTopics/internal/mm"
	"github.com/e-gun/OCRTopics/internal/vv"
)

// NewMessageMakerConfigured - a MessageMaker that already reflects Config and Prog
func NewMessageMakerConfigured() *mm.MessageMaker {
	m := mm.NewMessageMaker(Prog.Name, Prog.Short, vv.VERSION)
	UpdateMessageMakerWithConfig(m)
	return m
}

// NewMessageMakerWithDefaults - for package level vars that exist before the configuration does
func NewMessageMakerWithDefaults() *mm.MessageMaker {
	m := mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
	m.BW = vv.BLACKANDWHITE
	m.LLvl = vv.DEFAULTGOLOGLVL
	return m
}

// StopBeforeExit - m runs stop ahead of any fatal exit
func StopBeforeExit(m *mm.MessageMaker, stop func()) {
	exit := m.Exit
	if exit == nil {
		exit = os.Exit
	}
	m.Exit = func(code int) {
		stop()
		exit(code)
	}
}

func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
	m.LNm = Prog.Name
	m.SNm = Prog.Short
}
