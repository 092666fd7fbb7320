package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type AuthCfg struct {
	JWTSecret   string
	TokenTTLSec int
	BcryptCost  int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type MQCfg struct {
	URL   string
	Queue string
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
	SSE              string
}

type UploadCfg struct {
	MaxImageBytes int64
	MaxFileBytes  int64
	MaxBodyBytes  int64
}

// BodyLimit is MaxBodyBytes, or room for one base64 encoded file plus 1MB of
// JSON when unset.
func (u UploadCfg) BodyLimit() int64 {
	if u.MaxBodyBytes > 0 {
		return u.MaxBodyBytes
	}
	return u.MaxFileBytes*4/3 + 1<<20
}

type RateLimitCfg struct {
	Enabled   bool
	Requests  int
	WindowSec int
}

type CORSCfg struct {
	AllowOrigins []string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Auth      AuthCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Upload    UploadCfg
	RateLimit RateLimitCfg
	CORS      CORSCfg
	Telemetry TelemetryCfg
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_AUTH_JWTSECRET -> auth.jwtSecret

	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// expand ${ENV} placeholders once before parsing
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No config file: env + defaults only
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "site-api")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("auth.tokenTTLSec", 3600)
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rabbitmq.queue", "site_events")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
	v.SetDefault("upload.maxImageBytes", 2<<20)
	v.SetDefault("upload.maxFileBytes", 5<<20)
	v.SetDefault("upload.maxBodyBytes", 0)
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requests", 10)
	v.SetDefault("rateLimit.windowSec", 60)
	v.SetDefault("cors.allowOrigins", []string{
		"https://tri-next-gen.vercel.app",
		"http://localhost:3000",
		"http://localhost:5173",
	})
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
