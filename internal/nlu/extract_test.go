//go:build unit

package nlu_test

import (
	"testing"

	"service-desk/internal/nlu"

	"github.com/stretchr/testify/assert"
)

type extractCase struct {
	text   string
	want   string
	wantOK bool
}

func runExtract(t *testing.T, fn func(string) (string, bool), cases []extractCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			got, ok := fn(c.text)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestExtractName(t *testing.T) {
	runExtract(t, nlu.ExtractName, []extractCase{
		{text: "Name: Rajesh KC. Phone: +977-9851234567.", want: "Rajesh", wantOK: true},
		{text: "name - Sita Sharma", want: "Sita Sharma", wantOK: true},
		{text: "Hi, I'm Asha and my phone won't charge.", want: "Asha", wantOK: true},
		{text: "this is Ram Bahadur calling", want: "Ram Bahadur", wantOK: true},
		{text: "I AM Gita", want: "Gita", wantOK: true},
		{text: "i am having trouble", want: "", wantOK: false},
		{text: "my laptop is broken", want: "", wantOK: false},
	})
}

func TestExtractPhone(t *testing.T) {
	runExtract(t, nlu.ExtractPhone, []extractCase{
		{text: "Phone: +977-9851234567.", want: "+977 9851234567", wantOK: true},
		{text: "Contact: 9841122334", want: "9841122334", wantOK: true},
		{text: "call 98 41 12 23 34 now", want: "98 41 12 23 34", wantOK: true},
		{text: "+977 - 1234567", want: "+977 1234567", wantOK: true},
		{text: "room 12, floor 3", want: "", wantOK: false},
	})
}

func TestExtractDevice(t *testing.T) {
	runExtract(t, nlu.ExtractDevice, []extractCase{
		{text: "Model: Dell XPS 13. My laptop won't boot.", want: "Dell XPS 13", wantOK: true},
		{text: "sku-A123", want: "A123", wantOK: true},
		{text: "It's a HP LaserJet 1020", want: "HP LaserJet", wantOK: true},
		{text: "My printer won't print", want: "printer", wantOK: true},
		{text: "my old MacBook", want: "MacBook", wantOK: true},
		{text: "nothing useful here", want: "", wantOK: false},
	})
}

func TestExtractTicketID(t *testing.T) {
	runExtract(t, nlu.ExtractTicketID, []extractCase{
		{text: "What's the status of TICKET-1001?", want: "TICKET-1001", wantOK: true},
		{text: "status of ticket-abcdef12 please", want: "TICKET-ABCDEF12", wantOK: true},
		{text: "Can you check ticket 2002 for me?", want: "TICKET-2002", wantOK: true},
		{text: "ticket 12", want: "TICKET-12", wantOK: true},
		{text: "TICKETX9Z", want: "TICKETX9Z", wantOK: true},
		{text: "I need an update on my repair.", want: "", wantOK: false},
		{text: "", want: "", wantOK: false},
	})
}

func TestExtractSlots(t *testing.T) {
	got := nlu.ExtractSlots("Name: Rajesh KC. Phone: +977-9851234567. Model: Dell XPS 13. My laptop won't boot.")
	assert.Equal(t, nlu.Slots{CustomerName: "Rajesh", Phone: "+977 9851234567", Device: "Dell XPS 13"}, got)

	assert.Equal(t, nlu.Slots{}, nlu.ExtractSlots("hello"))
}
