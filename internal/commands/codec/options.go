package codec

import (
	"github.com/bokysan/basez/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"
	"io"
	"os"
)

// Options are shared by the encode and decode commands
type Options struct {
	Encoding string `short:"e" long:"encoding" env:"BASEZ_ENCODING" required:"true" description:"Encoding to use" choice:"base16" choice:"base32" choice:"base64"`
	Alphabet string `short:"E" long:"alphabet" env:"BASEZ_ALPHABET" description:"Custom alphabet (base32 and base64 only)"`
	File     bool   `short:"f" long:"file"                          description:"DATA is a file name, use its contents instead"`

	Args struct {
		Data []string `positional-arg-name:"DATA" description:"Data (or file name with --file). If missing, data is read from stdin"`
	} `positional-args:"yes"`

	stdin  io.Reader
	stdout io.Writer
}

// encoder returns the encoder selected by the options. Alphabet problems are reported before any
// data is read.
func (o *Options) encoder() (enc.Encoder, error) {
	encoder, err := enc.Lookup(o.Encoding, o.Alphabet)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using %s with alphabet %q", encoder.Name(), encoder.Alphabet())
	return encoder, nil
}

// payload resolves the data to work on: the last DATA argument, the contents of the file it names
// or, without DATA, everything on stdin. Data is used as-is, no newlines are stripped.
func (o *Options) payload() ([]byte, error) {
	var data []byte
	var err error

	if n := len(o.Args.Data); n > 0 {
		if n > 1 {
			log.Warnf("Got %d arguments, only the last one is used", n)
		}
		last := o.Args.Data[n-1]
		if o.File {
			data, err = os.ReadFile(last)
			if err != nil {
				return nil, errors.Wrapf(err, "Could not read %s", last)
			}
		} else {
			data = []byte(last)
		}
	} else if o.File {
		return nil, errors.New("No file name given")
	} else {
		data, err = readInput(o.input())
		if err != nil {
			return nil, err
		}
	}

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Payload (%d bytes):\n%s", len(data), spew.Sdump(data))
	}
	return data, nil
}

func readInput(r io.Reader) ([]byte, error) {
	if f, ok := r.(*os.File); ok && terminal.IsTerminal(int(f.Fd())) {
		return nil, errors.New("No data given: pass DATA, a file with --file, or pipe the data to stdin")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read stdin")
	}
	return data, nil
}

// write outputs the result verbatim, without a trailing newline.
func (o *Options) write(data []byte) error {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Output (%d bytes):\n%s", len(data), spew.Sdump(data))
	}
	_, err := o.output().Write(data)
	return errors.WithStack(err)
}

func (o *Options) input() io.Reader {
	if o.stdin != nil {
		return o.stdin
	}
	return os.Stdin
}

func (o *Options) output() io.Writer {
	if o.stdout != nil {
		return o.stdout
	}
	return os.Stdout
}
