package observability

import (
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config настройки OpenTelemetry для Supply Service.
// Заполняется в app.Build из OTEL_* переменных окружения (см. internal/config).
type Config struct {
	// Enabled выключен по умолчанию: без collector'а экспорт только засоряет лог ошибками
	Enabled bool
	// OTLPEndpoint host:port OTLP gRPC, общий для трасс и метрик
	OTLPEndpoint string
	// SamplingRatio доля корневых трасс, 1.0 = все; дочерние следуют решению родителя
	SamplingRatio float64
	// ServiceName попадает в service.name и в имя tracer'а HTTP middleware
	ServiceName string
	// DeploymentEnvironment значение APP_ENV (local, docker)
	DeploymentEnvironment string
	// ServiceVersion пусто - атрибут не пишется
	ServiceVersion string
}

// resourceAttributes атрибуты resource, общие для трасс и метрик
func (c Config) resourceAttributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("deployment.environment", c.DeploymentEnvironment),
	}
	if c.ServiceVersion != "" {
		attrs = append(attrs, attribute.String("service.version", c.ServiceVersion))
	}
	return attrs
}

// sampler уважает решение входящего traceparent, иначе семплирует по SamplingRatio
func (c Config) sampler() sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SamplingRatio))
}
