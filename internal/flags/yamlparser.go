package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
//
// Every top-level key names an option group (by its short description) or a command, and maps the long
// names of its options to their values:
//
//	General:
//	  verbose: [true, true]
//	decode:
//	  encoding: base32
//	  alphabet: abcdefghijklmnopqrstuvwxyz234567
type YamlParser struct {
	ParseAsDefaults bool // override default flags
	parser          *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error or flags.IniError.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents (separated by `---`) one after another and applies each of them in turn,
// so later documents override the earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.Wrapf(err, "Could not apply element at position %v", i)
		}
	}
}

// parseSegment converts one YAML document into INI sections and lets the flags INI parser apply them,
// so that choices, types and callbacks are handled exactly like on the command line.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name := range obj {
		if y.parser.Find(name) == nil && y.parser.Command.Group.Find(name) == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option group or command '%s'", name),
			})
		}
	}

	ini, err := toIni(obj)
	if err != nil {
		return err
	}
	if ini == "" {
		return nil
	}

	iniParser := flags.NewIniParser(y.parser)
	iniParser.ParseAsDefaults = y.ParseAsDefaults
	return errors.WithStack(iniParser.Parse(strings.NewReader(ini)))
}

// toIni renders the sections sorted by name. Values are always quoted; lists become repeated keys.
func toIni(obj map[string]interface{}) (string, error) {
	b := &strings.Builder{}
	for _, name := range sortedKeys(obj) {
		if obj[name] == nil {
			continue
		}
		section, ok := obj[name].(map[string]interface{})
		if !ok {
			return "", errors.Errorf("'%s' must be a map of options, got %T", name, obj[name])
		}

		fmt.Fprintf(b, "[%s]\n", name)
		for _, key := range sortedKeys(section) {
			switch v := section[key].(type) {
			case nil:
				continue
			case map[string]interface{}:
				return "", errors.Errorf("option '%s.%s' can not be a map", name, key)
			case []interface{}:
				for _, item := range v {
					writeIniValue(b, key, item)
				}
			default:
				writeIniValue(b, key, v)
			}
		}
	}
	return b.String(), nil
}

func writeIniValue(b *strings.Builder, key string, value interface{}) {
	fmt.Fprintf(b, "%s = %s\n", key, strconv.Quote(fmt.Sprint(value)))
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
