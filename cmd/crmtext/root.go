package main

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/adamwoolhether/crmtext"
	"github.com/adamwoolhether/crmtext/client"
	"github.com/adamwoolhether/crmtext/xmltree"
)

// app carries the state shared by every subcommand.
type app struct {
	v    *viper.Viper
	cfg  config
	conn *crmtext.Conn
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:           "crmtext",
		Short:         "Call the CRMText SMS/MMS API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnv(".env"); err != nil {
				return err
			}

			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("endpoint", crmtext.DefaultEndpoint, "API endpoint")
	flags.String("token", "", "precomputed auth token")
	flags.String("username", "", "account username")
	flags.String("password", "", "account password")
	flags.String("keyword", "", "store keyword")
	flags.Duration("timeout", client.DefaultTimeout, "request timeout, 0 disables it")
	flags.StringP("output", "o", "xml", "output format: xml, json or yaml")
	flags.BoolP("verbose", "v", false, "verbose logging")
	if err := a.v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		versionCmd(),
		a.tokenCmd(),
		a.optInCmd(),
		a.optOutCmd(),
		a.getCallbackCmd(),
		a.setCallbackCmd(),
		a.sendSMSCmd(),
		a.sendCampaignCmd(),
		a.keywordAvailableCmd(),
		a.createStoreCmd(),
		a.createKeywordCmd(),
		a.changeTextCodeMsgCmd(),
		a.deleteKeywordCmd(),
		a.customersByStatusCmd(),
		a.customerInfoCmd(),
		a.customerMsgsCmd(),
		a.inboundMsgsCmd(),
		a.outboundMsgsCmd(),
	)

	return root
}

// connected wraps an API call with connection setup and output rendering.
func (a *app) connected(fn func(cmd *cobra.Command, args []string) (*xmltree.Element, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		conn, err := a.cfg.connect(a.cfg.logger())
		if err != nil {
			return err
		}
		a.conn = conn

		el, err := fn(cmd, args)
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), el, a.cfg.Output)
	}
}

func render(w io.Writer, el *xmltree.Element, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(el, "", "  ")
		if err != nil {
			return fmt.Errorf("rendering json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(el); err != nil {
			return fmt.Errorf("rendering yaml: %w", err)
		}
		return enc.Close()

	default:
		b, err := xml.MarshalIndent(el, "", "  ")
		if err != nil {
			return fmt.Errorf("rendering xml: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
}

// parseDate accepts YYYY-MM-DD or RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date[%s] must be YYYY-MM-DD or RFC3339", s)
	}

	return t, nil
}

func dateRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "start date, YYYY-MM-DD or RFC3339")
	cmd.Flags().String("end", "", "end date, YYYY-MM-DD or RFC3339")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func dateRange(cmd *cobra.Command) (crmtext.DateRange, error) {
	start, err := cmd.Flags().GetString("start")
	if err != nil {
		return crmtext.DateRange{}, err
	}
	end, err := cmd.Flags().GetString("end")
	if err != nil {
		return crmtext.DateRange{}, err
	}

	var r crmtext.DateRange
	if r.Start, err = parseDate(start); err != nil {
		return crmtext.DateRange{}, fmt.Errorf("start: %w", err)
	}
	if r.End, err = parseDate(end); err != nil {
		return crmtext.DateRange{}, fmt.Errorf("end: %w", err)
	}

	return r, nil
}
