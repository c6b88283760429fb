package usecase

import (
	"slices"

	"service-desk/internal/nlu"
)

type DiagnosisStatus string

const (
	DiagnosisOK          DiagnosisStatus = "ok"
	DiagnosisMissingInfo DiagnosisStatus = "missing_info"
	DiagnosisEscalate    DiagnosisStatus = "escalate"
)

const replyTroubleshootMissing = "Could you tell me the device type (e.g., laptop, printer) and the exact symptoms or error messages?"

type Diagnosis struct {
	Status      DiagnosisStatus `json:"status"`
	DeviceType  nlu.DeviceType  `json:"device_type,omitempty"`
	Symptoms    []nlu.Symptom   `json:"symptoms"`
	Missing     []string        `json:"missing,omitempty"`
	Suggestions []string        `json:"suggestions"`
	Reply       string          `json:"reply"`
}

type remedy struct {
	when     []nlu.Symptom
	steps    []string
	escalate bool
}

type playbook struct {
	remedies []remedy
	fallback string
}

// First remedy whose symptoms intersect the detected ones wins.
var playbooks = map[nlu.DeviceType]playbook{
	nlu.DeviceLaptop: {
		remedies: []remedy{
			{
				when: []nlu.Symptom{nlu.SymptomNoPower},
				steps: []string{
					"Check that the charger is firmly connected and the power LED on the charger is lit.",
					"Try a different power outlet and, if available, a different compatible charger.",
					"Remove battery (if removable) and try powering with adapter only.",
					"If still no power, escalate for board-level inspection (possible DC jack or motherboard issue).",
				},
				escalate: true,
			},
			{
				when: []nlu.Symptom{nlu.SymptomNoDisplay},
				steps: []string{
					"Check display brightness and try an external monitor via HDMI/VGA.",
					"Listen for fan activity; reseat RAM modules and try again.",
					"If external monitor works, the laptop screen or cable may be faulty.",
				},
			},
			{
				when: []nlu.Symptom{nlu.SymptomBeeping},
				steps: []string{
					"Count beeps and note the pattern; it indicates POST error (RAM, GPU, CPU).",
					"Try reseating RAM modules and boot again.",
					"If beeps persist, escalate to technician for hardware diagnostics.",
				},
			},
			{
				when: []nlu.Symptom{nlu.SymptomSlowPerformance},
				steps: []string{
					"Check Task Manager / Activity Monitor for processes using high CPU/RAM.",
					"Reboot the system and apply OS updates.",
					"Run disk cleanup and check for malware/antivirus scans.",
				},
			},
		},
		fallback: "Try rebooting, ensure OS updates are applied, and run basic antivirus scans.",
	},
	nlu.DevicePrinter: {
		remedies: []remedy{
			{
				when: []nlu.Symptom{nlu.SymptomPaperJam},
				steps: []string{
					"Turn off the printer and gently remove any visible jammed paper.",
					"Open access panels and check rollers for small scraps.",
					"Ensure paper tray is correctly loaded and not overfilled.",
				},
			},
			{
				when: []nlu.Symptom{nlu.SymptomNotPrinting},
				steps: []string{
					"Check printer status on PC and ensure correct driver is selected.",
					"Verify ink/toner levels and try a test print from the printer's onboard menu.",
					"Restart the printer spooler service on your computer.",
				},
			},
		},
		fallback: "Power cycle the printer and check for error lights or codes.",
	},
	nlu.DeviceCCTV: {
		remedies: []remedy{
			{
				when: []nlu.Symptom{nlu.SymptomNoDisplay, nlu.SymptomNoPower},
				steps: []string{
					"Check power connections to camera and NVR/DVR.",
					"Ensure network cable (if IP camera) is connected and switch/router is powered.",
					"Try rebooting the NVR/DVR and check camera status LEDs.",
				},
			},
		},
		fallback: "Check camera lens and wiring; if uncertain, capture a photo and bring to technician.",
	},
	nlu.DeviceDesktop: {
		remedies: []remedy{
			{
				when: []nlu.Symptom{nlu.SymptomNoPower},
				steps: []string{
					"Check PSU switch and power cable; test with another power cable.",
					"Try booting with minimal peripherals (disconnect USB devices).",
					"If still no power, escalate for PSU/motherboard inspection.",
				},
				escalate: true,
			},
			{
				when: []nlu.Symptom{nlu.SymptomNoDisplay},
				steps: []string{
					"Ensure monitor input is correct and cables are seated.",
					"Reseat GPU and RAM if comfortable doing so; try onboard video if available.",
					"Check for beeps during boot which indicate hardware faults.",
				},
			},
		},
		fallback: "Reboot the PC and check BIOS/POST messages for errors.",
	},
}

// Diagnose suggests first steps for a described fault. Both a device type
// and at least one symptom are needed; otherwise the result asks for them.
func Diagnose(text string) Diagnosis {
	device, found := nlu.DetectDeviceType(text)
	symptoms := nlu.DetectSymptoms(text)
	if symptoms == nil {
		symptoms = []nlu.Symptom{}
	}

	d := Diagnosis{DeviceType: device, Symptoms: symptoms, Suggestions: []string{}}
	if !found {
		d.Missing = append(d.Missing, "device_type")
	}
	if len(symptoms) == 0 {
		d.Missing = append(d.Missing, "symptoms")
	}
	if len(d.Missing) > 0 {
		d.Status = DiagnosisMissingInfo
		d.Reply = replyTroubleshootMissing
		return d
	}

	d.Status = DiagnosisOK
	book := playbooks[device]
	d.Suggestions = []string{book.fallback}
	for _, rem := range book.remedies {
		if slices.ContainsFunc(rem.when, func(s nlu.Symptom) bool { return slices.Contains(symptoms, s) }) {
			d.Suggestions = slices.Clone(rem.steps)
			if rem.escalate {
				d.Status = DiagnosisEscalate
			}
			break
		}
	}
	d.Reply = "Here are suggested steps for your " + string(device) + ": " + d.Suggestions[0]
	return d
}
