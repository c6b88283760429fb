//go:build unit

package nlu_test

import (
	"testing"

	"service-desk/internal/nlu"

	"github.com/stretchr/testify/assert"
)

func TestDetectDeviceType(t *testing.T) {
	cases := []struct {
		text   string
		want   nlu.DeviceType
		wantOK bool
	}{
		{text: "My laptop won't boot", want: nlu.DeviceLaptop, wantOK: true},
		{text: "Canon inkjet smudges", want: nlu.DevicePrinter, wantOK: true},
		{text: "CCTV camera offline", want: nlu.DeviceCCTV, wantOK: true},
		{text: "office workstation is slow", want: nlu.DeviceDesktop, wantOK: true},
		{text: "notebook and printer", want: nlu.DeviceLaptop, wantOK: true},
		{text: "it's broken", wantOK: false},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			got, ok := nlu.DetectDeviceType(c.text)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDetectSymptoms(t *testing.T) {
	cases := []struct {
		text string
		want []nlu.Symptom
	}{
		{text: "My laptop won't boot after update and the screen is black.", want: []nlu.Symptom{nlu.SymptomNoPower}},
		{text: "Printer shows paper jam and won't print.", want: []nlu.Symptom{nlu.SymptomPaperJam}},
		{text: "CCTV camera offline, no video on monitor.", want: []nlu.Symptom{nlu.SymptomNoDisplay, nlu.SymptomNetworkIssue}},
		{text: "My desktop is very slow and freezing frequently.", want: []nlu.Symptom{nlu.SymptomSlowPerformance}},
		{text: "It keeps beeping and shows error code: 42", want: []nlu.Symptom{nlu.SymptomBeeping, nlu.SymptomErrorMessage}},
		{text: "nothing wrong", want: nil},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			assert.Equal(t, c.want, nlu.DetectSymptoms(c.text))
		})
	}
}
