//    OCRTopics
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"io"
	"os"

	"github.com/e-gun/OCRTopics/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

//
// HTML REPORT
//

// Report - chart dimensions for the html output
type Report struct {
	Width  string
	Height string
}

func DefaultReport() Report {
	return Report{Width: vv.DEFAULTCHRTWD, Height: vv.DEFAULTCHRTHT}
}

// WriteHTMLFile - WriteHTML() into fn
func (rp Report) WriteHTMLFile(fn string, r *Result) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err = rp.WriteHTML(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteHTML - one bar chart of documents per dominant topic, then one bar chart of term weights per topic
func (rp Report) WriteHTML(w io.Writer, r *Result) error {
	const (
		PAGETITLE = "%s: %d topics over %d documents"
	)

	p := components.NewPage()
	p.PageTitle = fmt.Sprintf(PAGETITLE, vv.MYNAME, len(r.Topics), len(r.Documents))
	p.AddCharts(rp.dominancechart(r))
	for _, t := range r.Topics {
		p.AddCharts(rp.topicchart(t))
	}
	return p.Render(w)
}

func (rp Report) dominancechart(r *Result) *charts.Bar {
	const (
		TITLE  = "Documents per dominant topic"
		SERIES = "documents"
	)

	counts := DominantTopics(r)
	xx := make([]string, len(counts))
	bd := make([]opts.BarData, len(counts))
	for i, c := range counts {
		xx[i] = fmt.Sprintf("%d", i)
		bd[i] = opts.BarData{Value: c}
	}

	bar := rp.newbar(TITLE, fmt.Sprintf("%d documents", len(r.Documents)))
	bar.SetXAxis(xx).AddSeries(SERIES, bd)
	return bar
}

func (rp Report) topicchart(t Topic) *charts.Bar {
	const (
		SERIES = "weight"
	)

	bd := make([]opts.BarData, len(t.Weights))
	for i, v := range t.Weights {
		bd[i] = opts.BarData{Value: v}
	}

	bar := rp.newbar(fmt.Sprintf(vv.TOPICHEADERTMPL, t.Index), "")
	bar.SetXAxis(t.Terms).AddSeries(SERIES, bd)
	return bar
}

// newbar - return a pre-formatted charts.Bar
func (rp Report) newbar(title string, subtitle string) *charts.Bar {
	const (
		LEFTALIGN = "20"
	)

	tit := opts.Title{
		Title:    title,
		Subtitle: subtitle,
		Left:     LEFTALIGN,
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: rp.Width, Height: rp.Height}),
		charts.WithTitleOpts(tit),
	)
	return bar
}
