package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adamwoolhether/crmtext"
	"github.com/adamwoolhether/crmtext/client"
	"github.com/adamwoolhether/crmtext/xmltree"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), client.Version)
			return err
		},
	}
}

func (a *app) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the auth token derived from username, password and keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := crmtext.Connect(crmtext.WithCredentials(a.cfg.Username, a.cfg.Password, a.cfg.Keyword))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), conn.Token())
			return err
		},
	}
}

func (a *app) optInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opt-in <firstname> <lastname> <phone>",
		Short: "Opt a customer in",
		Args:  cobra.ExactArgs(3),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.OptInCustomer(cmd.Context(), args[0], args[1], args[2])
		}),
	}
}

func (a *app) optOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opt-out <phone>",
		Short: "Opt a customer out",
		Args:  cobra.ExactArgs(1),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.OptOutCustomer(cmd.Context(), args[0])
		}),
	}
}

func (a *app) getCallbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-callback",
		Short: "Show the configured callback URL",
		Args:  cobra.NoArgs,
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.GetCallback(cmd.Context())
		}),
	}
}

func (a *app) setCallbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-callback <url>",
		Short: "Set the callback URL",
		Args:  cobra.ExactArgs(1),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.SetCallback(cmd.Context(), args[0])
		}),
	}
}

func (a *app) sendSMSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-sms <phone>",
		Short: "Send an SMS or MMS message",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringP("message", "m", "", "message text")
	cmd.Flags().String("mms-url", "", "media url, sends an MMS")

	cmd.RunE = a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
		var opts []crmtext.SendOption
		if msg, _ := cmd.Flags().GetString("message"); msg != "" {
			opts = append(opts, crmtext.WithMessage(msg))
		}
		if mms, _ := cmd.Flags().GetString("mms-url"); mms != "" {
			opts = append(opts, crmtext.WithMMSURL(mms))
		}

		return a.conn.SendSMS(cmd.Context(), args[0], opts...)
	})

	return cmd
}

func (a *app) sendCampaignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send-campaign <name> <message>",
		Short: "Broadcast a campaign message",
		Args:  cobra.ExactArgs(2),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.SendCampaign(cmd.Context(), args[0], args[1])
		}),
	}
}

func (a *app) keywordAvailableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyword-available <keyword>",
		Short: "Check whether a keyword is available",
		Args:  cobra.ExactArgs(1),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.IsKeywordAvailable(cmd.Context(), args[0])
		}),
	}
}

func (a *app) createStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-store",
		Short: "Create a store and its user",
		Args:  cobra.NoArgs,
	}

	var s crmtext.StoreAndUser
	cmd.Flags().StringVar(&s.StoreName, "store-name", "", "store name")
	cmd.Flags().StringVar(&s.StoreKeyword, "store-keyword", "", "store keyword")
	cmd.Flags().StringVar(&s.FirstName, "first-name", "", "user first name")
	cmd.Flags().StringVar(&s.LastName, "last-name", "", "user last name")
	cmd.Flags().StringVar(&s.Email, "email", "", "user email")
	cmd.Flags().StringVar(&s.PhoneNumber, "phone", "", "user phone number")
	cmd.Flags().StringVar(&s.Password, "user-password", "", "user password")
	for _, name := range []string{"store-name", "store-keyword", "first-name", "last-name", "email", "phone", "user-password"} {
		_ = cmd.MarkFlagRequired(name)
	}

	cmd.RunE = a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
		return a.conn.CreateStoreAndUser(cmd.Context(), s)
	})

	return cmd
}

func (a *app) createKeywordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-keyword <keyword> <autoresponder>",
		Short: "Create a keyword",
		Args:  cobra.ExactArgs(2),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.CreateKeyword(cmd.Context(), args[0], args[1])
		}),
	}
}

func (a *app) changeTextCodeMsgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-textcode-msg <textcode> <optinmsg> <nonoptinmsg>",
		Short: "Change the store text-code replies",
		Args:  cobra.ExactArgs(3),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.ChangeStoreTextCodeMsg(cmd.Context(), args[0], args[1], args[2])
		}),
	}
}

func (a *app) deleteKeywordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-keyword <keyword> <autoresponder>",
		Short: "Delete a keyword",
		Args:  cobra.ExactArgs(2),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.DeleteKeyword(cmd.Context(), args[0], args[1])
		}),
	}
}

func (a *app) customersByStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers-by-status <status>",
		Short: "List customers by status",
		Args:  cobra.ExactArgs(1),
	}
	offset := cmd.Flags().Int("offset", 0, "index of the first customer")
	count := cmd.Flags().Int("count", 50, "number of customers")

	cmd.RunE = a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
		return a.conn.GetCustomersByStatus(cmd.Context(), args[0], *offset, *count)
	})

	return cmd
}

func (a *app) customerInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "customer-info <phone>",
		Short: "Show a customer",
		Args:  cobra.ExactArgs(1),
		RunE: a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
			return a.conn.GetCustomerInfo(cmd.Context(), args[0])
		}),
	}
}

func (a *app) customerMsgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer-msgs <phone>",
		Short: "List the messages exchanged with a customer",
		Args:  cobra.ExactArgs(1),
	}
	dateRangeFlags(cmd)
	startCount := cmd.Flags().Int("start-count", 0, "index of the first message")
	msgCount := cmd.Flags().Int("count", 50, "number of messages")

	cmd.RunE = a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
		r, err := dateRange(cmd)
		if err != nil {
			return nil, err
		}

		return a.conn.GetCustomerMsgsByMobile(cmd.Context(), args[0], r, *startCount, *msgCount)
	})

	return cmd
}

func (a *app) inboundMsgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbound-msgs",
		Short: "List messages received by the store",
		Args:  cobra.NoArgs,
	}
	dateRangeFlags(cmd)

	cmd.RunE = a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
		r, err := dateRange(cmd)
		if err != nil {
			return nil, err
		}

		return a.conn.GetInboundMsgs(cmd.Context(), r)
	})

	return cmd
}

func (a *app) outboundMsgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbound-msgs",
		Short: "List messages sent by the store",
		Args:  cobra.NoArgs,
	}
	dateRangeFlags(cmd)

	cmd.RunE = a.connected(func(cmd *cobra.Command, args []string) (*xmltree.Element, error) {
		r, err := dateRange(cmd)
		if err != nil {
			return nil, err
		}

		return a.conn.GetOutboundMsgs(cmd.Context(), r)
	})

	return cmd
}
