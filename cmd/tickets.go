package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"service-desk/internal/domain/ticket"
	"service-desk/internal/usecase/commands"
	"service-desk/internal/usecase/queries"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Inspect and file repair tickets",
}

var (
	ticketStatusFilter string
	newTicket          commands.CreateTicketRequest
)

var ticketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets in creation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var q queries.TicketQueries
		if err := withCLI(&q); err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TICKET\tSTATUS\tPRIORITY\tCUSTOMER\tDEVICE\tCREATED")
		for _, t := range q.ListTickets(ticketStatusFilter) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				t.TicketID, t.Status, t.Priority, t.CustomerName, t.Device, t.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var ticketsStatusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Show one ticket; partial ids are accepted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var q queries.TicketQueries
		if err := withCLI(&q); err != nil {
			return err
		}
		found, err := q.GetTicket(args[0])
		if err != nil {
			return err
		}
		printTicket(cmd.OutOrStdout(), found.Ticket)
		if found.PartialMatch {
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.NewStyle().Faint(true).Render("(partial id match)"))
		}
		return nil
	},
}

var ticketsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "File a repair ticket",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cmds commands.TicketCommands
		if err := withCLI(&cmds); err != nil {
			return err
		}
		t, err := cmds.CreateTicket(newTicket)
		if err != nil {
			return err
		}
		printTicket(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	ticketsListCmd.Flags().StringVar(&ticketStatusFilter, "status", "", "only tickets in this status")

	f := ticketsCreateCmd.Flags()
	f.StringVar(&newTicket.CustomerName, "name", "", "customer name")
	f.StringVar(&newTicket.Phone, "phone", "", "contact phone")
	f.StringVar(&newTicket.Device, "device", "", "device model or SKU")
	f.StringVar(&newTicket.Issue, "issue", "", "problem description")
	f.StringVar(&newTicket.Priority, "priority", "", "defaults to normal")
	_ = ticketsCreateCmd.MarkFlagRequired("name")
	_ = ticketsCreateCmd.MarkFlagRequired("device")
	_ = ticketsCreateCmd.MarkFlagRequired("issue")

	ticketsCmd.AddCommand(ticketsListCmd, ticketsStatusCmd, ticketsCreateCmd)
}

var ticketHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func printTicket(out io.Writer, t ticket.Ticket) {
	fmt.Fprintln(out, ticketHeading.Render(t.TicketID+" ("+t.Status+")"))
	fmt.Fprintf(out, "  customer: %s  %s\n", t.CustomerName, t.Phone)
	fmt.Fprintf(out, "  device:   %s\n", t.Device)
	fmt.Fprintf(out, "  issue:    %s\n", t.Issue)
	fmt.Fprintf(out, "  priority: %s\n", t.Priority)
	fmt.Fprintf(out, "  created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04:05 MST"))
}
