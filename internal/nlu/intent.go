// Package nlu holds the keyword and regex heuristics used to understand
// free-text service desk messages.
package nlu

import "strings"

type Intent string

const (
	IntentRepairIntake   Intent = "repair_intake"
	IntentInventoryQuery Intent = "inventory_query"
	IntentStatusQuery    Intent = "status_query"
	IntentTroubleshoot   Intent = "troubleshoot"
	IntentFallback       Intent = "fallback"
)

// Classifier maps a message to an intent.
type Classifier func(text string) Intent

type intentRule struct {
	intent   Intent
	keywords []string
}

// Checked in order; the first rule with a matching keyword wins.
var intentRules = []intentRule{
	{IntentRepairIntake, []string{"ticket", "repair", "fix", "create ticket", "i need a repair", "repair request"}},
	{IntentInventoryQuery, []string{"stock", "price", "how much", "availability", "in stock", "do you have"}},
	{IntentStatusQuery, []string{"status", "ticket-", "ticket ", "tkt", "where is my ticket"}},
	{IntentTroubleshoot, []string{"doesn't work", "not working", "paper jam", "overheat", "no power", "no display", "not printing"}},
}

// Classify is the default keyword Classifier.
func Classify(text string) Intent {
	t := strings.ToLower(text)
	for _, rule := range intentRules {
		if containsAny(t, rule.keywords) {
			return rule.intent
		}
	}
	return IntentFallback
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
