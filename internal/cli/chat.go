package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursechat/coursechat-go/internal/adapters/provider"
	"github.com/coursechat/coursechat-go/internal/domain/strategy"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question-answering session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		controller, _, err := buildApp(ctx, cfg)
		if err != nil {
			return err
		}

		fmt.Println("Course Catalog Chatbot")
		fmt.Printf("Commands: exit | set strategy {%s} | set provider {%s}\n",
			strings.Join(strategy.Names(), "|"), strings.Join(provider.Names(), "|"))
		fmt.Println(strings.Repeat("-", 40))

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("You: ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if strings.EqualFold(line, "exit") {
				fmt.Println("Goodbye!")
				break
			}

			if handled := runCommand(controller, line); handled {
				continue
			}

			result, err := controller.Ask(ctx, line)
			if err != nil {
				fmt.Printf("Bot: sorry, I couldn't answer that: %v\n\n", err)
				continue
			}
			fmt.Printf("Bot: %s\n\n", result.Answer)
		}
		return scanner.Err()
	},
}

// runCommand handles "set strategy <name>" and "set provider <name>".
// Returns false when the line is a question, not a command.
func runCommand(controller interface {
	SetStrategy(string) error
	SetProvider(string) error
}, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) != 3 || fields[0] != "set" {
		return false
	}

	var err error
	switch fields[1] {
	case "strategy":
		err = controller.SetStrategy(fields[2])
	case "provider":
		err = controller.SetProvider(fields[2])
	default:
		return false
	}

	if err != nil {
		fmt.Printf("error: %v\n", err)
	} else {
		fmt.Printf("%s changed to %s\n", fields[1], fields[2])
	}
	return true
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
