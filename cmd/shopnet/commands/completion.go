package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:
  $ source <(shopnet completion bash)

  # To load completions for each session, execute once:
  $ shopnet completion bash > /etc/bash_completion.d/shopnet

Zsh:
  $ shopnet completion zsh > "${fpath[1]}/_shopnet"

Fish:
  $ shopnet completion fish > ~/.config/fish/completions/shopnet.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				_, err := fmt.Fprint(out, bashCompletion)
				return err
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			default:
				return rootCmd.GenPowerShellCompletion(out)
			}
		},
	}
}

// bashCompletion is a small handwritten script; network files complete
// as plain filenames.
const bashCompletion = `
# shopnet bash completion

_shopnet_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="inspect export batch completion help"

    case "${prev}" in
        inspect)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
        export|batch)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "json yaml csv" -- ${cur}) )
            return 0
            ;;
        --config|--out)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- ${cur}) )
            return 0
            ;;
        *)
            ;;
    esac

    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--help --version --config --verbose --json-logs --strict-targets --otel-endpoint --where --dump --tui --format --out --workers" -- ${cur}) )
        return 0
    fi

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) $(compgen -f -- ${cur}) )
}

complete -F _shopnet_completion shopnet
`
