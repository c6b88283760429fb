//go:build unit

package usecase_test

import (
	"testing"

	"service-desk/internal/nlu"
	"service-desk/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestDiagnose(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		status     usecase.DiagnosisStatus
		device     nlu.DeviceType
		firstStep  string
		stepsCount int
	}{
		{
			name:       "laptop without power escalates",
			text:       "My laptop won't turn on at all",
			status:     usecase.DiagnosisEscalate,
			device:     nlu.DeviceLaptop,
			firstStep:  "Check that the charger is firmly connected and the power LED on the charger is lit.",
			stepsCount: 4,
		},
		{
			name:       "laptop power beats display",
			text:       "laptop no power and black screen",
			status:     usecase.DiagnosisEscalate,
			device:     nlu.DeviceLaptop,
			firstStep:  "Check that the charger is firmly connected and the power LED on the charger is lit.",
			stepsCount: 4,
		},
		{
			name:       "laptop beeping",
			text:       "the notebook keeps beeping on boot",
			status:     usecase.DiagnosisOK,
			device:     nlu.DeviceLaptop,
			firstStep:  "Count beeps and note the pattern; it indicates POST error (RAM, GPU, CPU).",
			stepsCount: 3,
		},
		{
			name:       "laptop with an unlisted symptom",
			text:       "laptop overheating",
			status:     usecase.DiagnosisOK,
			device:     nlu.DeviceLaptop,
			firstStep:  "Try rebooting, ensure OS updates are applied, and run basic antivirus scans.",
			stepsCount: 1,
		},
		{
			name:       "printer jam",
			text:       "Printer has a paper jam",
			status:     usecase.DiagnosisOK,
			device:     nlu.DevicePrinter,
			firstStep:  "Turn off the printer and gently remove any visible jammed paper.",
			stepsCount: 3,
		},
		{
			name:       "cctv without display",
			text:       "cctv camera shows no signal",
			status:     usecase.DiagnosisOK,
			device:     nlu.DeviceCCTV,
			firstStep:  "Check power connections to camera and NVR/DVR.",
			stepsCount: 3,
		},
		{
			name:       "desktop without power escalates",
			text:       "desktop won't start",
			status:     usecase.DiagnosisEscalate,
			device:     nlu.DeviceDesktop,
			firstStep:  "Check PSU switch and power cable; test with another power cable.",
			stepsCount: 3,
		},
		{
			name:       "desktop fallback",
			text:       "workstation is slow",
			status:     usecase.DiagnosisOK,
			device:     nlu.DeviceDesktop,
			firstStep:  "Reboot the PC and check BIOS/POST messages for errors.",
			stepsCount: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := usecase.Diagnose(tc.text)
			assert.Equal(t, tc.status, d.Status)
			assert.Equal(t, tc.device, d.DeviceType)
			if assert.Len(t, d.Suggestions, tc.stepsCount) {
				assert.Equal(t, tc.firstStep, d.Suggestions[0])
			}
			assert.Equal(t, "Here are suggested steps for your "+string(tc.device)+": "+tc.firstStep, d.Reply)
			assert.Empty(t, d.Missing)
		})
	}
}

func TestDiagnose_MissingInfo(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		missing []string
	}{
		{"nothing recognizable", "it is broken", []string{"device_type", "symptoms"}},
		{"device only", "my laptop", []string{"symptoms"}},
		{"symptom only", "it won't boot", []string{"device_type"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := usecase.Diagnose(tc.text)
			assert.Equal(t, usecase.DiagnosisMissingInfo, d.Status)
			assert.Equal(t, tc.missing, d.Missing)
			assert.Empty(t, d.Suggestions)
			assert.Equal(t, "Could you tell me the device type (e.g., laptop, printer) and the exact symptoms or error messages?", d.Reply)
		})
	}
}
