package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/matthewchungkaishing/FIT3179/src/regiondata"
)

// stateCard is the summary panel beside the charts. It shows the selected
// state's UV metrics or melanoma metrics depending on which map the
// selection came from.
type stateCard struct {
	box *fyne.Container

	name        *widget.Label
	uvAnnual    *widget.Label
	uvPeakMonth *widget.Label
	uvPeakIndex *widget.Label
	melASR      *widget.Label
	melCases    *widget.Label

	uvGroup  *fyne.Container
	melGroup *fyne.Container
}

func metricRow(title string, value *widget.Label) *fyne.Container {
	return container.NewHBox(widget.NewLabel(title), value)
}

func newStateCard() *stateCard {
	c := &stateCard{
		name:        widget.NewLabelWithStyle(regiondata.Placeholder, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		uvAnnual:    widget.NewLabel(regiondata.Placeholder),
		uvPeakMonth: widget.NewLabel(regiondata.Placeholder),
		uvPeakIndex: widget.NewLabel(regiondata.Placeholder),
		melASR:      widget.NewLabel(regiondata.Placeholder),
		melCases:    widget.NewLabel(regiondata.Placeholder),
	}
	c.uvGroup = container.NewVBox(
		widget.NewLabelWithStyle("UV Index", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		metricRow("Annual mean UVI:", c.uvAnnual),
		metricRow("Peak month:", c.uvPeakMonth),
		metricRow("Peak month UVI:", c.uvPeakIndex),
	)
	c.melGroup = container.NewVBox(
		widget.NewLabelWithStyle("Melanoma Incidence", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		metricRow("ASR per 100k:", c.melASR),
		metricRow("Cases 2017-2021:", c.melCases),
	)
	c.box = container.NewVBox(
		widget.NewLabelWithStyle("State Summary", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		c.name,
		widget.NewSeparator(),
		c.uvGroup,
		c.melGroup,
	)
	return c
}

// Render updates the card for the given region code and context. An empty or
// unknown code is the "nothing selected" presentation, never an error. The
// context decides which metric group is visible; the hidden group's values
// are left untouched.
func (c *stateCard) Render(code, context string) {
	uvRec, haveUV := regiondata.UVByCode[code]
	melRec, haveMel := regiondata.MelanomaByCode[code]
	if code == "" || !haveUV || !haveMel {
		c.name.SetText(regiondata.Placeholder)
		c.uvAnnual.SetText(regiondata.Placeholder)
		c.uvPeakMonth.SetText(regiondata.Placeholder)
		c.uvPeakIndex.SetText(regiondata.Placeholder)
		c.melASR.SetText(regiondata.Placeholder)
		c.melCases.SetText(regiondata.Placeholder)
	} else {
		c.name.SetText(uvRec.DisplayName)
		switch context {
		case contextMelanoma:
			c.melASR.SetText(regiondata.FormatIndex(melRec.AgeStandardizedRate))
			c.melCases.SetText(regiondata.FormatCases(melRec.TotalCases))
		default:
			c.uvAnnual.SetText(regiondata.FormatIndex(uvRec.AnnualMeanIndex))
			c.uvPeakMonth.SetText(regiondata.MonthName(uvRec.PeakMonth))
			c.uvPeakIndex.SetText(regiondata.FormatIndex(uvRec.PeakMonthIndex))
		}
	}
	if context == contextMelanoma {
		c.uvGroup.Hide()
		c.melGroup.Show()
	} else {
		c.melGroup.Hide()
		c.uvGroup.Show()
	}
}
