package cmd

import (
	"errors"
	"fmt"
	"io"
)

var ErrUnknownShell = errors.New("unknown shell")

// Completion writes the completion script for shell
func Completion(w io.Writer, shell string) error {
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletion)
	case "zsh":
		fmt.Fprint(w, zshCompletion)
	case "fish":
		fmt.Fprint(w, fishCompletion)
	default:
		return usageErrorf("%w: %s (supported: bash, zsh, fish)", ErrUnknownShell, shell)
	}
	return nil
}

const bashCompletion = `_securepass() {
    local cur prev words cword
    _init_completion || return

    case "$prev" in
        -f|--file)
            _filedir
            return
            ;;
        -l|--length|-n|--count|-k|--keyring)
            return
            ;;
        --completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
            return
            ;;
    esac

    local opts="-l --length -b --symbol -s --special -n --count -q --quiet -f --file -a --append -c --clipboard -k --keyring --overwrite -v --version --completion -h --help"
    COMPREPLY=($(compgen -W "$opts" -- "$cur"))
}

complete -F _securepass securepass
`

const zshCompletion = `#compdef securepass

_securepass() {
    _arguments \
        '(-l --length)'{-l,--length}'[Set the password length]:length:' \
        '(-b --symbol)'{-b,--symbol}'[Require at least one symbol character]' \
        '(-s --special)'{-s,--special}'[Require at least one special character]' \
        '(-n --count)'{-n,--count}'[Number of passwords]:count:' \
        '(-q --quiet)'{-q,--quiet}'[Only print passwords]' \
        '(-f --file)'{-f,--file}'[Write passwords to file]:file:_files' \
        '(-a --append)'{-a,--append}'[Append to the file]' \
        '(-c --clipboard)'{-c,--clipboard}'[Copy passwords to clipboard]' \
        '(-k --keyring)'{-k,--keyring}'[Store passwords in the OS keyring]:name:' \
        '--overwrite[Replace existing keyring entries]' \
        '(-v --version)'{-v,--version}'[Print version]' \
        '--completion[Print shell completion script]:shell:(bash zsh fish)' \
        '(-h --help)'{-h,--help}'[Show help]'
}

_securepass "$@"
`

const fishCompletion = `# securepass fish completions

complete -c securepass -f

complete -c securepass -s l -l length -x -d 'Set the password length'
complete -c securepass -s b -l symbol -d 'Require at least one symbol character'
complete -c securepass -s s -l special -d 'Require at least one special character'
complete -c securepass -s n -l count -x -d 'Number of passwords'
complete -c securepass -s q -l quiet -d 'Only print passwords'
complete -c securepass -s f -l file -r -F -d 'Write passwords to file'
complete -c securepass -s a -l append -d 'Append to the file'
complete -c securepass -s c -l clipboard -d 'Copy passwords to clipboard'
complete -c securepass -s k -l keyring -x -d 'Store passwords in the OS keyring'
complete -c securepass -l overwrite -d 'Replace existing keyring entries'
complete -c securepass -s v -l version -d 'Print version'
complete -c securepass -l completion -x -a "bash zsh fish" -d 'Print shell completion script'
complete -c securepass -s h -l help -d 'Show help'
`
