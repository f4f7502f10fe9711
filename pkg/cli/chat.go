package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tribu-ai/tribuai/pkg/cli/config"
	"github.com/tribu-ai/tribuai/pkg/domain/model"
	"github.com/tribu-ai/tribuai/pkg/domain/types"
	"github.com/tribu-ai/tribuai/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdChat() *cli.Command {
	var tasteCfg config.Taste
	var geminiCfg config.Gemini
	var promptsCfg config.Prompts

	flags := tasteCfg.Flags()
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, promptsCfg.Flags()...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Interactive conversation on the terminal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, cleanup, err := buildUseCases(ctx, &tasteCfg, &geminiCfg, &promptsCfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return runChat(ctx, uc)
		},
	}
}

func runChat(ctx context.Context, uc *usecase.UseCases) error {
	assistant := color.New(color.FgCyan)
	heading := color.New(color.FgGreen, color.Bold)
	item := color.New(color.FgYellow)
	notice := color.New(color.FgRed)

	sessionID := types.NewSessionID()
	heading.Println("tribuai chat - tell me about your cultural interests (type 'exit' to quit)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		result, err := uc.Conversation.HandleTurn(ctx, sessionID, input)
		if err != nil {
			notice.Printf("error: %v\n", err)
			continue
		}

		if result.AssistantMessage != "" {
			assistant.Println(result.AssistantMessage)
		}
		if result.ErrorMessage != "" {
			notice.Printf("(degraded: %s)\n", result.ErrorMessage)
		}

		if result.ProfileComplete && result.CulturalProfile != nil {
			heading.Printf("\n%s\n", result.CulturalProfile.Identity)
			fmt.Println(result.CulturalProfile.Description)
			printRecommendations(item, result.Recommendations)
			if result.Matching != nil {
				heading.Printf("\nAudience match: %d%% (%s)\n",
					result.Matching.AffinityPercentage, result.Matching.AudienceCluster)
			}
			fmt.Println()
		}
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read input")
	}
	return nil
}

func printRecommendations(item *color.Color, set *model.RecommendationSet) {
	if set == nil {
		return
	}
	if len(set.Brands) > 0 {
		fmt.Println("\nBrands for you:")
		for _, b := range set.Brands {
			item.Printf("  - %s", b.Name)
			if b.Description != "" {
				fmt.Printf(": %s", truncate(b.Description, 80))
			}
			fmt.Println()
		}
	}
	if len(set.Places) > 0 {
		fmt.Println("\nPlaces for you:")
		for _, p := range set.Places {
			item.Printf("  - %s", p.Name)
			if p.Description != "" {
				fmt.Printf(": %s", truncate(p.Description, 80))
			}
			fmt.Println()
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
