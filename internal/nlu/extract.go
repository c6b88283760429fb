package nlu

import (
	"regexp"
	"strings"
)

// TicketIDExtractor finds a ticket id in a message.
type TicketIDExtractor func(text string) (string, bool)

var (
	nameLabelPattern     = regexp.MustCompile(`(?i:name)[:\s-]*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	nameIntroPattern     = regexp.MustCompile(`(?i:i am|i'm|this is)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	phonePattern         = regexp.MustCompile(`(\+?\d[\d\-\s]{6,}\d)`)
	phoneSeparators      = regexp.MustCompile(`[\s\-]+`)
	deviceLabelPattern   = regexp.MustCompile(`(?i)(?:model|device|sku)[:\s-]*([A-Za-z0-9\-\s]+\w)`)
	deviceVocabulary     = regexp.MustCompile(`(?i)(dell\s+xps|thinkpad|macbook|hp\s+laserjet|printer|iphone|samsung\s+galaxy)`)
	ticketIDPattern      = regexp.MustCompile(`(?i)(TICKET[- ]?[0-9A-Za-z]{3,})`)
	ticketNumericPattern = regexp.MustCompile(`(?i)ticket\s+([0-9]{2,})`)
)

// Slots are the intake fields found in one message.
type Slots struct {
	CustomerName string
	Phone        string
	Device       string
}

func ExtractSlots(text string) Slots {
	var s Slots
	s.CustomerName, _ = ExtractName(text)
	s.Phone, _ = ExtractPhone(text)
	s.Device, _ = ExtractDevice(text)
	return s
}

// ExtractName looks for "name: Sita Sharma" first, then introductions like
// "I'm Asha". Only capitalized words are taken as the name.
func ExtractName(text string) (string, bool) {
	if m := nameLabelPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := nameIntroPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// ExtractPhone returns the first run of 8+ digits, spaces and hyphens
// (optionally led by +) with separators collapsed to single spaces.
func ExtractPhone(text string) (string, bool) {
	m := phonePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return phoneSeparators.ReplaceAllString(strings.TrimSpace(m[1]), " "), true
}

func ExtractDevice(text string) (string, bool) {
	if m := deviceLabelPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := deviceVocabulary.FindString(text); m != "" {
		return strings.TrimSpace(m), true
	}
	return "", false
}

// ExtractTicketID accepts "TICKET-1A2B", "ticket abc123" and "ticket 1234",
// normalized to upper case with a hyphen after TICKET.
func ExtractTicketID(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if m := ticketIDPattern.FindStringSubmatch(text); m != nil {
		return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(m[1])), " ", "-"), true
	}
	if m := ticketNumericPattern.FindStringSubmatch(text); m != nil {
		return "TICKET-" + m[1], true
	}
	return "", false
}
