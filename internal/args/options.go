package args

// CallbackOption is invoked by the parser with the option's value as soon as the option is seen
type CallbackOption func(string) error

var General struct {
	Verbose               []bool         `short:"v" long:"verbose"             env:"BASEZ_VERBOSITY"          description:"Show verbose debug information, repeat for more"`
	ConfigurationFile     CallbackOption `short:"c" long:"config"              env:"BASEZ_CONFIG"             description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string
	LogFile               *string `short:"l" long:"log-file"            env:"BASEZ_LOG_FILE"           description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string  `          long:"log-format"          env:"BASEZ_LOG_FORMAT"         description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string  `short:"C" long:"log-color"           env:"BASEZ_LOG_COLOR"          description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool    `          long:"log-full-timestamp"  env:"BASEZ_LOG_FULL_TIMESTAMP" description:"Display full timestamp in logs."`
	LogReportCaller       bool    `          long:"log-report-caller"   env:"BASEZ_LOG_REPORT_CALLER"  description:"If you wish to add the calling method as a field."`
}
