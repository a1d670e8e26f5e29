package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/alds"

// Init configures OpenTelemetry with the stdout exporter. If outputFile is
// empty traces are written to os.Stdout, otherwise to the specified file. The
// first successful initialisation wins.
func Init(serviceName, serviceVersion, outputFile string) error {
	if provider != nil {
		return nil
	}
	var w io.Writer = os.Stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		w, closer = f, f
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return err
	}
	if err = installProvider(serviceName, serviceVersion, exporter); err != nil {
		return err
	}
	if closer != nil {
		output = closer
	}
	return nil
}

// InitWithExporter configures OpenTelemetry using the supplied SpanExporter.
// The first successful initialisation wins.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	return installProvider(serviceName, serviceVersion, exporter)
}

var (
	providerOnce sync.Once
	providerErr  error
	provider     *sdktrace.TracerProvider
	output       io.Closer
)

func installProvider(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	providerOnce.Do(func() {
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = err
			return
		}
		provider = sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(provider)
	})
	return providerErr
}

// Shutdown flushes the installed provider and closes the trace file, if any.
func Shutdown(ctx context.Context) error {
	if provider == nil {
		return nil
	}
	err := provider.Shutdown(ctx)
	if output != nil {
		if cErr := output.Close(); err == nil {
			err = cErr
		}
		output = nil
	}
	return err
}

// Span wraps an OpenTelemetry span so that callers do not import the upstream package.
type Span struct {
	span trace.Span
}

// WithAttributes attaches all provided attributes to the span.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	otelAttrs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		otelAttrs = append(otelAttrs, attribute.String(k, v))
	}
	s.span.SetAttributes(otelAttrs...)
	return s
}

// WithInt attaches an integer attribute to the span.
func (s *Span) WithInt(key string, value int) *Span {
	if s == nil {
		return s
	}
	s.span.SetAttributes(attribute.Int(key, value))
	return s
}

// SetStatus records an error status on the span, OK for nil err.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		return
	}
	s.span.SetStatus(codes.Ok, "")
}

var spanKinds = map[string]trace.SpanKind{
	"SERVER":   trace.SpanKindServer,
	"CLIENT":   trace.SpanKindClient,
	"PRODUCER": trace.SpanKindProducer,
	"CONSUMER": trace.SpanKindConsumer,
}

// StartSpan starts a new child span; kind is one of SERVER, CLIENT, PRODUCER,
// CONSUMER, anything else maps to internal.
func StartSpan(ctx context.Context, name, kind string) (context.Context, *Span) {
	spanKind, ok := spanKinds[kind]
	if !ok {
		spanKind = trace.SpanKindInternal
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(spanKind))
	return ctx, &Span{span: span}
}

// EndSpan finalises the span and records status depending on the provided error.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}

// SpanFromContext retrieves the current span from ctx.
func SpanFromContext(ctx context.Context) (*Span, bool) {
	sp := trace.SpanFromContext(ctx)
	if !sp.SpanContext().IsValid() {
		return nil, false
	}
	return &Span{span: sp}, true
}
