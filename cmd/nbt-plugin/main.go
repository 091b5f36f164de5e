package main

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/redpanda-data/benthos/v4/public/service"

	"github.com/twinfer/nbt-plugin/pkg/nbtbin"
)

// NBTProcessor is a Benthos processor that decodes named-binary-tag payloads
// into structured messages.
type NBTProcessor struct {
	decoder  *nbtbin.Decoder
	check    *vm.Program
	logger   *service.Logger
	mDecoded *service.MetricCounter
	mDropped *service.MetricCounter
	mErrors  *service.MetricCounter
}

func init() {
	err := service.RegisterProcessor(
		"nbt",
		nbtProcessorConfig(),
		func(conf *service.ParsedConfig, mgr *service.Resources) (service.Processor, error) {
			return newNBTProcessorFromConfig(conf, mgr)
		},
	)
	if err != nil {
		panic(err)
	}
}

// nbtProcessorConfig returns a config spec for an nbt processor.
func nbtProcessorConfig() *service.ConfigSpec {
	return service.NewConfigSpec().
		Summary("Decodes named-binary-tag payloads into structured messages.").
		Description("This processor decodes the big-endian named binary tag format into a structured value, optionally inflating a gzip or zlib envelope first. Decoding is all-or-nothing: malformed payloads flag the message with an error instead of emitting a partial tree.").
		Field(service.NewStringEnumField("compression", "auto", "none", "gzip", "zlib").
			Description("How to handle a compression envelope around the payload. 'auto' sniffs gzip/zlib magic bytes.").
			Default("auto")).
		Field(service.NewIntField("max_depth").
			Description("Maximum container nesting depth accepted before a payload is rejected.").
			Default(512)).
		Field(service.NewStringField("check").
			Description("Optional boolean expression evaluated against the decoded root. Messages for which it returns false are dropped.").
			Example(`hello.DataVersion > 100`).
			Default("")).
		Version("0.1.0")
}

// newNBTProcessorFromConfig creates a new NBTProcessor from a parsed config.
func newNBTProcessorFromConfig(conf *service.ParsedConfig, mgr *service.Resources) (*NBTProcessor, error) {
	compression, err := conf.FieldString("compression")
	if err != nil {
		return nil, err
	}
	mode, err := compressionMode(compression)
	if err != nil {
		return nil, err
	}

	maxDepth, err := conf.FieldInt("max_depth")
	if err != nil {
		return nil, err
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("max_depth must be at least 1, got %d", maxDepth)
	}

	checkExpr, err := conf.FieldString("check")
	if err != nil {
		return nil, err
	}
	var check *vm.Program
	if checkExpr != "" {
		check, err = expr.Compile(checkExpr, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return nil, fmt.Errorf("compiling check expression: %w", err)
		}
	}

	metrics := mgr.Metrics()
	return &NBTProcessor{
		decoder: nbtbin.NewDecoder(
			nbtbin.WithCompression(mode),
			nbtbin.WithMaxDepth(maxDepth),
		),
		check:    check,
		logger:   mgr.Logger(),
		mDecoded: metrics.NewCounter("nbt_decoded_messages"),
		mDropped: metrics.NewCounter("nbt_dropped_messages"),
		mErrors:  metrics.NewCounter("nbt_processing_errors"),
	}, nil
}

func compressionMode(name string) (nbtbin.Compression, error) {
	switch name {
	case "auto":
		return nbtbin.CompressionAuto, nil
	case "none":
		return nbtbin.CompressionNone, nil
	case "gzip":
		return nbtbin.CompressionGzip, nil
	case "zlib":
		return nbtbin.CompressionZlib, nil
	default:
		return 0, fmt.Errorf("unknown compression mode: %s", name)
	}
}

// Process decodes one message's payload into a structured value.
func (p *NBTProcessor) Process(ctx context.Context, msg *service.Message) (service.MessageBatch, error) {
	binData, err := msg.AsBytes()
	if err != nil {
		p.logger.Errorf("Failed to get binary data from message: %v", err)
		p.mErrors.Incr(1)
		msg.SetError(fmt.Errorf("failed to get binary data from message: %w", err))
		return service.MessageBatch{msg}, nil
	}

	if len(binData) == 0 {
		p.logger.Warn("Empty binary data provided")
		p.mErrors.Incr(1)
		msg.SetError(fmt.Errorf("empty binary data provided"))
		return service.MessageBatch{msg}, nil
	}

	result, err := p.decoder.ParseBinary(ctx, binData)
	if err != nil {
		p.logger.Errorf("Failed to decode payload of size %d bytes: %v", len(binData), err)
		p.mErrors.Incr(1)
		msg.SetError(fmt.Errorf("failed to decode payload of size %d bytes: %w", len(binData), err))
		return service.MessageBatch{msg}, nil
	}

	if p.check != nil {
		keep, err := p.evalCheck(result)
		if err != nil {
			p.logger.Errorf("Check expression failed: %v", err)
			p.mErrors.Incr(1)
			msg.SetError(fmt.Errorf("check expression failed: %w", err))
			return service.MessageBatch{msg}, nil
		}
		if !keep {
			p.logger.Debug("Dropping message: check expression returned false")
			p.mDropped.Incr(1)
			return service.MessageBatch{}, nil
		}
	}

	p.logger.Debugf("Successfully decoded %d bytes of binary data", len(binData))
	p.mDecoded.Incr(1)

	newMsg := service.NewMessage(nil)
	newMsg.SetStructured(result)

	// Copy metadata from original message
	msg.MetaWalk(func(key, value string) error {
		newMsg.MetaSet(key, value)
		return nil
	})

	return service.MessageBatch{newMsg}, nil
}

func (p *NBTProcessor) evalCheck(env map[string]any) (bool, error) {
	out, err := expr.Run(p.check, env)
	if err != nil {
		return false, err
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("check expression returned %T, want bool", out)
	}
	return keep, nil
}

// Close the processor resources.
func (p *NBTProcessor) Close(ctx context.Context) error {
	return nil
}

func main() {
	service.RunCLI(context.Background())
}
