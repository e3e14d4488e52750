package codec

import (
	"github.com/bokysan/basez/internal/logging"
	log "github.com/sirupsen/logrus"
)

// EncodeCommand encodes DATA and prints the text to stdout
type EncodeCommand struct {
	Options
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{}
}

//noinspection GoUnusedParameter
func (c *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	encoder, err := c.encoder()
	if err != nil {
		return err
	}
	data, err := c.payload()
	if err != nil {
		return err
	}

	encoded := encoder.Encode(data)
	log.Debugf("Encoded %d bytes into %d %s symbols", len(data), len(encoded), encoder.Name())
	return c.write([]byte(encoded))
}
