//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/nlu"
	"service-desk/internal/usecase"
	"service-desk/tests/common/builder"
	usecasemock "service-desk/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChatUseCaseTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRouter *usecasemock.MockMessageRouter
	mockAgent  *usecasemock.MockAgent
}

func (s *ChatUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRouter = usecasemock.NewMockMessageRouter(s.mockCtrl)
	s.mockAgent = usecasemock.NewMockAgent(s.mockCtrl)
}

func (s *ChatUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChatUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(ChatUseCaseTestSuite))
}

func (s *ChatUseCaseTestSuite) local() usecase.ChatUseCase {
	return usecase.NewChatUseCase(s.mockRouter, nil, time.Second, discardLogger())
}

func (s *ChatUseCaseTestSuite) TestLocalPassThrough() {
	session := usecase.Session{"customer_name": "Sita"}
	s.mockRouter.EXPECT().Route("hello", session).
		Return(usecase.Response{Reply: "fallback reply", Intent: nlu.IntentFallback, Outcome: usecase.Reply{}}).Times(1)

	res := s.local().Chat(context.Background(), "hello", session)

	s.Equal("fallback reply", res.Reply)
	s.Nil(res.Tool)
	s.Nil(res.Result)
	s.Equal("fallback", res.Intent)
	s.Equal(session, res.Session)
	s.False(res.Remote)
	s.False(s.local().AgentLoaded())
}

func (s *ChatUseCaseTestSuite) TestTicketIDIsLayeredIntoSession() {
	created := builder.NewTicketBuilder().BuildStored("TICKET-0BADF00D", t0)
	s.mockRouter.EXPECT().Route(gomock.Any(), gomock.Any()).Return(usecase.Response{
		Reply:   "Ticket created",
		Intent:  nlu.IntentRepairIntake,
		Outcome: usecase.ToolResult{Tool: usecase.ToolCreateTicket, Payload: usecase.TicketPayload{Status: "success", Ticket: &created}},
	}).Times(1)

	in := usecase.Session{"customer_name": "Sita"}
	res := s.local().Chat(context.Background(), "repair", in)

	s.Equal("TICKET-0BADF00D", res.Session["ticket_id"])
	s.Equal("Sita", res.Session["customer_name"])
	s.NotContains(in, "ticket_id", "caller session must not be modified")
	s.Require().NotNil(res.Tool)
	s.Equal("create_ticket", *res.Tool)
}

func (s *ChatUseCaseTestSuite) TestTroubleshootingAppendsDiagnosis() {
	s.mockRouter.EXPECT().Route(gomock.Any(), gomock.Any()).Return(usecase.Response{
		Reply:   "I can help troubleshoot",
		Intent:  nlu.IntentTroubleshoot,
		Outcome: usecase.ToolResult{Tool: usecase.ToolTroubleshooting},
	}).Times(1)

	res := s.local().Chat(context.Background(), "my laptop has no power", nil)

	s.True(strings.HasPrefix(res.Reply, "I can help troubleshoot\n\nHere are suggested steps for your laptop: "))
	s.Contains(res.Reply, "\n\nSuggestions:\n- Check that the charger")
	s.Equal(4, strings.Count(res.Reply, "\n- "))
	d, ok := res.Result.(usecase.Diagnosis)
	s.Require().True(ok)
	s.Equal(usecase.DiagnosisEscalate, d.Status)
	s.NotNil(res.Session)
}

func (s *ChatUseCaseTestSuite) TestInventoryReplyNamesTopMatch() {
	item := builder.NewInventoryBuilder().BuildDomain()
	item.Status = inventory.StatusAvailable
	s.mockRouter.EXPECT().Route(gomock.Any(), gomock.Any()).Return(usecase.Response{
		Reply:  "I found 1 matching items.",
		Intent: nlu.IntentInventoryQuery,
		Outcome: usecase.ToolResult{
			Tool:    usecase.ToolInventoryLookup,
			Payload: usecase.LookupPayload{Status: "success", Results: []inventory.Item{item}, Count: 1},
		},
	}).Times(1)

	res := s.local().Chat(context.Background(), "dell in stock?", nil)

	s.Equal("I found 1 matching items.\n\nTop match: Dell XPS 13 (serial SN-1001, available).", res.Reply)
}

func (s *ChatUseCaseTestSuite) TestRemoteAgent() {
	s.Run("agent reply wins and merges session", func() {
		tool := "get_ticket_status"
		s.mockAgent.EXPECT().Run(gomock.Any(), usecase.AgentRequest{Input: "status?", Session: usecase.Session{"phone": "1"}}).
			DoAndReturn(func(ctx context.Context, _ usecase.AgentRequest) (usecase.AgentReply, error) {
				_, hasDeadline := ctx.Deadline()
				s.True(hasDeadline)
				return usecase.AgentReply{
					Reply:   "Ticket X is received.",
					Tool:    &tool,
					Intent:  "status_query",
					Session: usecase.Session{"ticket_id": "TICKET-X"},
				}, nil
			}).Times(1)

		uc := usecase.NewChatUseCase(s.mockRouter, s.mockAgent, time.Second, discardLogger())
		s.True(uc.AgentLoaded())
		res := uc.Chat(context.Background(), "status?", usecase.Session{"phone": "1"})

		s.True(res.Remote)
		s.Equal("Ticket X is received.", res.Reply)
		s.Equal(usecase.Session{"phone": "1", "ticket_id": "TICKET-X"}, res.Session)
	})

	s.Run("agent failure falls back to the local router", func() {
		s.mockAgent.EXPECT().Run(gomock.Any(), gomock.Any()).Return(usecase.AgentReply{}, errors.New("quota exceeded")).Times(1)
		s.mockRouter.EXPECT().Route("hi", usecase.Session{}).
			Return(usecase.Response{Reply: "local", Intent: nlu.IntentFallback, Outcome: usecase.Reply{}}).Times(1)

		uc := usecase.NewChatUseCase(s.mockRouter, s.mockAgent, time.Second, discardLogger())
		res := uc.Chat(context.Background(), "hi", nil)

		s.False(res.Remote)
		s.Equal("local", res.Reply)
	})
}
