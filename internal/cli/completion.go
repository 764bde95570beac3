package cli

import (
	"fmt"
	"io"
	"strings"
)

// GenerateCompletion writes a shell completion script for fibbench.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - algorithms: The registered strategy names offered for -algo.
//
// Returns:
//   - error: An error if the shell is not supported or the write fails.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	algoList := strings.Join(algorithms, " ")
	switch shell {
	case "bash":
		_, err := fmt.Fprintf(out, bashCompletion, algoList)
		return err
	case "zsh":
		_, err := fmt.Fprintf(out, zshCompletion, algoList)
		return err
	case "fish":
		_, err := fmt.Fprintf(out, fishCompletion, algoList)
		return err
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

const bashCompletion = `# Bash completion script for fibbench
# Add this to your ~/.bashrc or ~/.bash_completion

_fibbench_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="-h -help -version -algo -workers -reps -step -start -max-time -eps -metrics-file -quiet -q -no-color -log-level -completion"
    algorithms="%s"

    case "${prev}" in
        -algo)
            COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )
            return 0
            ;;
        -log-level)
            COMPREPLY=( $(compgen -W "debug info warn error disabled" -- "${cur}") )
            return 0
            ;;
        -completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
            return 0
            ;;
        -metrics-file)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        -max-time|-eps)
            COMPREPLY=( $(compgen -W "250ms 500ms 1s 2s 5s" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fibbench_completions fibbench
`

const zshCompletion = `#compdef fibbench

# Zsh completion script for fibbench
# Place this file in a directory listed in $fpath

_fibbench() {
    local -a algorithms
    algorithms=(%s)

    _arguments -s \
        '(-h -help)'{-h,-help}'[Show help message]' \
        '-version[Show version information]' \
        '-algo[Strategy to run]:strategy:($algorithms)' \
        '-workers[Concurrent benchmark workers]:count:(1 2 4 8)' \
        '-reps[Timed calls per index]:count:(5 15 30)' \
        '-step[Stride of the index counter]:step:(100 1000 10000)' \
        '-start[First index measured]:index:' \
        '-max-time[Per-index time limit]:duration:(250ms 500ms 1s 2s 5s)' \
        '-eps[Tolerance added to the limit]:duration:(0s 100ms 250ms)' \
        '-metrics-file[Prometheus metrics output]:file:_files' \
        '(-q -quiet)'{-q,-quiet}'[Hide the progress spinner]' \
        '-no-color[Disable colored output]' \
        '-log-level[Diagnostics level]:level:(debug info warn error disabled)' \
        '-completion[Generate completion script]:shell:(bash zsh fish)' \
        '1:first index:' \
        '2:last index:'
}

_fibbench "$@"
`

const fishCompletion = `# Fish completion script for fibbench
# Save as ~/.config/fish/completions/fibbench.fish

complete -c fibbench -o h -o help -d 'Show help message'
complete -c fibbench -o version -d 'Show version information'
complete -c fibbench -o algo -x -a '%s' -d 'Strategy to run'
complete -c fibbench -o workers -x -d 'Concurrent benchmark workers'
complete -c fibbench -o reps -x -d 'Timed calls per index'
complete -c fibbench -o step -x -d 'Stride of the index counter'
complete -c fibbench -o start -x -d 'First index measured'
complete -c fibbench -o max-time -x -a '250ms 500ms 1s 2s 5s' -d 'Per-index time limit'
complete -c fibbench -o eps -x -a '0s 100ms 250ms' -d 'Tolerance added to the limit'
complete -c fibbench -o metrics-file -r -F -d 'Prometheus metrics output'
complete -c fibbench -o q -o quiet -d 'Hide the progress spinner'
complete -c fibbench -o no-color -d 'Disable colored output'
complete -c fibbench -o log-level -x -a 'debug info warn error disabled' -d 'Diagnostics level'
complete -c fibbench -o completion -x -a 'bash zsh fish' -d 'Generate completion script'
`
