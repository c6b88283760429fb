package nlu

import "strings"

type DeviceType string

const (
	DeviceLaptop  DeviceType = "laptop"
	DevicePrinter DeviceType = "printer"
	DeviceCCTV    DeviceType = "cctv"
	DeviceDesktop DeviceType = "desktop"
)

type Symptom string

const (
	SymptomNoPower         Symptom = "no_power"
	SymptomBeeping         Symptom = "beeping"
	SymptomNoDisplay       Symptom = "no_display"
	SymptomPaperJam        Symptom = "paper_jam"
	SymptomNotPrinting     Symptom = "not_printing"
	SymptomOverheat        Symptom = "overheat"
	SymptomSlowPerformance Symptom = "slow_performance"
	SymptomErrorMessage    Symptom = "error_message"
	SymptomNetworkIssue    Symptom = "network_issue"
)

var deviceRules = []struct {
	device   DeviceType
	keywords []string
}{
	{DeviceLaptop, []string{"laptop", "notebook"}},
	{DevicePrinter, []string{"printer", "inkjet", "laser", "hp", "canon", "epson"}},
	{DeviceCCTV, []string{"cctv", "camera", "dvr", "nvr"}},
	{DeviceDesktop, []string{"desktop", "pc", "workstation"}},
}

var symptomRules = []struct {
	symptom  Symptom
	keywords []string
}{
	{SymptomNoPower, []string{"won't turn on", "not turning", "no power", "won't power", "won't boot", "won't start"}},
	{SymptomBeeping, []string{"beep", "beeping"}},
	{SymptomNoDisplay, []string{"no display", "no video", "black screen", "no signal"}},
	{SymptomPaperJam, []string{"paper jam", "jam", "paper stuck"}},
	{SymptomNotPrinting, []string{"not printing", "prints blank", "blank pages", "printer error"}},
	{SymptomOverheat, []string{"overheat", "hot", "heating"}},
	{SymptomSlowPerformance, []string{"slow", "lag", "freeze", "freez", "frozen"}},
	{SymptomErrorMessage, []string{"error", "error code", "error message", "code:"}},
	{SymptomNetworkIssue, []string{"disconnect", "no network", "offline", "disconnecting"}},
}

// DetectDeviceType returns the first device category whose keywords appear.
func DetectDeviceType(text string) (DeviceType, bool) {
	t := strings.ToLower(text)
	for _, rule := range deviceRules {
		if containsAny(t, rule.keywords) {
			return rule.device, true
		}
	}
	return "", false
}

// DetectSymptoms returns every matching symptom tag, in table order.
func DetectSymptoms(text string) []Symptom {
	t := strings.ToLower(text)
	var out []Symptom
	for _, rule := range symptomRules {
		if containsAny(t, rule.keywords) {
			out = append(out, rule.symptom)
		}
	}
	return out
}
