package setup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/openweb3-io/radixutils"
	"github.com/openweb3-io/radixutils/factory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type ContextKey string

const (
	ContextClient ContextKey = "client"
	ContextOutput ContextKey = "output"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func WrapClient(ctx context.Context, client radixutils.IClient) context.Context {
	return context.WithValue(ctx, ContextClient, client)
}

func UnwrapClient(ctx context.Context) radixutils.IClient {
	return ctx.Value(ContextClient).(radixutils.IClient)
}

func WrapOutput(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, ContextOutput, format)
}

func UnwrapOutput(ctx context.Context) string {
	format, ok := ctx.Value(ContextOutput).(string)
	if !ok {
		return OutputJSON
	}
	return format
}

func CreateContext(client radixutils.IClient, output string) context.Context {
	ctx := context.Background()
	ctx = WrapClient(ctx, client)
	ctx = WrapOutput(ctx, output)
	return ctx
}

type RpcArgs struct {
	ConfigPath string
	Output     string
}

func AddRpcArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to a yaml config file. Optional.")
	cmd.PersistentFlags().String("gateway", "", "Gateway url to use. Defaults to the public gateway of the network.")
	cmd.PersistentFlags().String("network", "", "Network to use: mainnet or stokenet.")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error).")
	cmd.PersistentFlags().StringP("output", "o", OutputJSON, "Output format: json or yaml.")
}

func RpcArgsFromCmd(cmd *cobra.Command) (*RpcArgs, error) {
	configPath, _ := cmd.Flags().GetString("config")
	output, _ := cmd.Flags().GetString("output")
	output = strings.ToLower(output)
	if output != OutputJSON && output != OutputYAML {
		return nil, fmt.Errorf("invalid output: %s\noptions: [%s %s]", output, OutputJSON, OutputYAML)
	}
	return &RpcArgs{
		ConfigPath: configPath,
		Output:     output,
	}, nil
}

// LoadConfig layers command line flags over the config file, RDX_* variables and defaults
func LoadConfig(cmd *cobra.Command, args *RpcArgs) (*factory.Config, error) {
	v := viper.New()
	for key, flag := range map[string]string{
		"gateway_url": "gateway",
		"network":     "network",
		"log_level":   "log-level",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, err
		}
	}
	return factory.LoadConfig(v, args.ConfigPath)
}

func LoadClient(cfg *factory.Config) (radixutils.IClient, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)

	logger, err := NewZapLogger(level)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return factory.NewDefaultFactory().NewClient(cfg)
}

// NewZapLogger builds the logger behind zap.S() at the same level as logrus
func NewZapLogger(level logrus.Level) (*zap.Logger, error) {
	zapLevel := zapcore.InfoLevel
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		zapLevel = zapcore.DebugLevel
	case logrus.WarnLevel:
		zapLevel = zapcore.WarnLevel
	case logrus.ErrorLevel:
		zapLevel = zapcore.ErrorLevel
	case logrus.FatalLevel, logrus.PanicLevel:
		zapLevel = zapcore.FatalLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapCfg.Build()
}

// Print renders v in the format selected by --output
func Print(ctx context.Context, w io.Writer, v any) error {
	switch UnwrapOutput(ctx) {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		bz, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bz))
		return err
	}
}
