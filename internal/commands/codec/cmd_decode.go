package codec

import (
	"github.com/bokysan/basez/internal/logging"
	"github.com/bokysan/basez/internal/util/enc"
	log "github.com/sirupsen/logrus"
)

// DecodeCommand decodes DATA and prints the raw bytes to stdout
type DecodeCommand struct {
	Options
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{}
}

// Execute decodes the payload. Invalid input is logged and nothing is written, but it is not
// reported as a failure: the process still exits with 0.
//noinspection GoUnusedParameter
func (c *DecodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	encoder, err := c.encoder()
	if err != nil {
		return err
	}
	data, err := c.payload()
	if err != nil {
		return err
	}

	decoded, err := encoder.Decode(string(data))
	if enc.IsKind(err, enc.InvalidInput) {
		log.WithError(err).Errorf("Could not decode %s data", encoder.Name())
		return nil
	} else if err != nil {
		return err
	}

	log.Debugf("Decoded %d %s symbols into %d bytes", len(data), encoder.Name(), len(decoded))
	return c.write(decoded)
}
