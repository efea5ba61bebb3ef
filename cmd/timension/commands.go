package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/api"
	"github.com/phrazzld/timension/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) headlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "headline",
		Short: "Print today's front-page story",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.content.GenerateDailyHeadline(cmd.Context()))
		},
	}
}

func (c *cli) chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <mentor-id> <message...>",
		Short: "Send one message to a mentor",
		Long:  "Send one message to a mentor and print the reply. Run \"timension mentors\" for the IDs.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mentor, err := c.catalog.Mentor(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}

			reply := c.content.ChatWithMentor(cmd.Context(), mentor.Name, mentor.Era, nil, strings.Join(args[1:], " "))
			return printJSON(cmd, domain.ChatMessage{
				ID:        uuid.NewString(),
				Sender:    domain.SenderAI,
				Text:      reply,
				Timestamp: time.Now().UnixMilli(),
			})
		},
	}
}

func (c *cli) exploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <place...>",
		Short: "Describe a place as a travel guide would",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.content.ExploreLocation(cmd.Context(), strings.Join(args, " ")))
		},
	}
}

func (c *cli) timelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <topic...>",
		Short: "Print a chronology of a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.content.GenerateTimeline(cmd.Context(), strings.Join(args, " ")))
		},
	}
}

func (c *cli) missionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mission <portal-id>",
		Short: "Print the briefing for a time portal",
		Long:  "Print the mission briefing for a time portal. Run \"timension portals\" for the IDs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			portal, err := c.catalog.Portal(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}
			return printJSON(cmd, c.content.GetMissionBriefing(cmd.Context(), portal.Year, portal.Title))
		},
	}
}

func (c *cli) rippleCmd() *cobra.Command {
	var original, replacement string
	var stability int

	cmd := &cobra.Command{
		Use:   "ripple --original <text> --new <text>",
		Short: "Rewrite a line of history and print the consequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stability < domain.MinStability || stability > domain.MaxStability {
				return fmt.Errorf("%w: stability must be between %d and %d",
					domain.ErrValidation, domain.MinStability, domain.MaxStability)
			}

			result := c.content.TriggerTimeRipple(cmd.Context(), original, replacement)
			return printJSON(cmd, api.RippleResponse{
				RippleResult: result,
				Stability:    domain.ApplyStability(stability, result.StabilityChange),
			})
		},
	}

	cmd.Flags().StringVar(&original, "original", "", "the line as history recorded it")
	cmd.Flags().StringVar(&replacement, "new", "", "the rewritten line")
	cmd.Flags().IntVar(&stability, "stability", domain.MaxStability, "timeline stability before the ripple")
	_ = cmd.MarkFlagRequired("original")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func (c *cli) chaosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chaos",
		Short: "Print a historical figure stranded in the wrong era",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.content.GenerateChaosPuzzle(cmd.Context()))
		},
	}
}

func (c *cli) mentorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mentors",
		Short: "List the mentors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.catalog.Mentors())
		},
	}
}

func (c *cli) portalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portals",
		Short: "List the time portals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.catalog.Portals())
		},
	}
}

func (c *cli) chronicleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chronicle",
		Short: "List the chronicle panels a ripple can rewrite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.catalog.Chronicle())
		},
	}
}
