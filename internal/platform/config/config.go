package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// insecureJWTSecret is only accepted outside production.
const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// ErrInsecureJWTSecret is returned in production when JWT_SECRET is unset or left at the development default.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value in production")

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	DatabaseURL    string
	MigrationsPath string
	CookieDomain   string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Admin access
	AdminUsername     string
	AdminPasswordHash string
	AdminEmails       []string
	GoogleClientID    string

	// Currency and exchange rates
	BaseCurrency       string
	RatesAPIURL        string
	RatesTTL           time.Duration
	RatesCheckInterval time.Duration
	RatesHTTPTimeout   time.Duration

	// Third-party providers
	StripeSecretKey      string
	StripeAPIURL         string
	PayPalClientID       string
	PayPalClientSecret   string
	PayPalAPIURL         string
	RecaptchaSecret      string
	RecaptchaVerifyURL   string
	RecaptchaMinScore    float64
	RecaptchaBypass      bool
	InstagramAccessToken string
	InstagramAPIURL      string
	TikTokUsername       string
	TikTokBaseURL        string
	UpstreamHTTPTimeout  time.Duration

	// HTTP surface
	CORSAllowedOrigins []string
	RateLimit          string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("COOKIE_DOMAIN", "")
	viper.SetDefault("JWT_SECRET", insecureJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "storefront-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("ADMIN_EMAILS", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("RATES_API_URL", "https://open.er-api.com/v6/latest")
	viper.SetDefault("RATES_TTL", "24h")
	viper.SetDefault("RATES_CHECK_INTERVAL", "15m")
	viper.SetDefault("RATES_HTTP_TIMEOUT", "5s")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_API_URL", "https://api.stripe.com")
	viper.SetDefault("PAYPAL_CLIENT_ID", "")
	viper.SetDefault("PAYPAL_CLIENT_SECRET", "")
	viper.SetDefault("PAYPAL_API_URL", "https://api-m.sandbox.paypal.com")
	viper.SetDefault("RECAPTCHA_SECRET", "")
	viper.SetDefault("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")
	viper.SetDefault("RECAPTCHA_MIN_SCORE", 0.5)
	viper.SetDefault("RECAPTCHA_BYPASS", false)
	viper.SetDefault("INSTAGRAM_ACCESS_TOKEN", "")
	viper.SetDefault("INSTAGRAM_API_URL", "https://graph.instagram.com")
	viper.SetDefault("TIKTOK_USERNAME", "")
	viper.SetDefault("TIKTOK_BASE_URL", "https://www.tiktok.com")
	viper.SetDefault("UPSTREAM_HTTP_TIMEOUT", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "20-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Rate snapshots will be kept in memory.")
	}
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.CookieDomain = viper.GetString("COOKIE_DOMAIN")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == insecureJWTSecret {
		if cfg.IsProduction {
			return nil, ErrInsecureJWTSecret
		}
		cfg.JWTSecret = insecureJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Password login for admins is disabled.")
	}
	cfg.AdminEmails = splitList(viper.GetString("ADMIN_EMAILS"))
	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")

	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	cfg.RatesAPIURL = strings.TrimRight(viper.GetString("RATES_API_URL"), "/")
	cfg.RatesTTL = durationOrDefault("RATES_TTL", 24*time.Hour)
	cfg.RatesCheckInterval = durationOrDefault("RATES_CHECK_INTERVAL", 15*time.Minute)
	cfg.RatesHTTPTimeout = durationOrDefault("RATES_HTTP_TIMEOUT", 5*time.Second)

	cfg.StripeSecretKey = viper.GetString("STRIPE_SECRET_KEY")
	cfg.StripeAPIURL = strings.TrimRight(viper.GetString("STRIPE_API_URL"), "/")
	cfg.PayPalClientID = viper.GetString("PAYPAL_CLIENT_ID")
	cfg.PayPalClientSecret = viper.GetString("PAYPAL_CLIENT_SECRET")
	cfg.PayPalAPIURL = strings.TrimRight(viper.GetString("PAYPAL_API_URL"), "/")
	cfg.RecaptchaSecret = viper.GetString("RECAPTCHA_SECRET")
	cfg.RecaptchaVerifyURL = viper.GetString("RECAPTCHA_VERIFY_URL")
	cfg.RecaptchaMinScore = viper.GetFloat64("RECAPTCHA_MIN_SCORE")
	cfg.RecaptchaBypass = viper.GetBool("RECAPTCHA_BYPASS")
	if cfg.RecaptchaBypass && cfg.IsProduction {
		log.Println("Warning: RECAPTCHA_BYPASS is ignored in production.")
		cfg.RecaptchaBypass = false
	}
	cfg.InstagramAccessToken = viper.GetString("INSTAGRAM_ACCESS_TOKEN")
	cfg.InstagramAPIURL = strings.TrimRight(viper.GetString("INSTAGRAM_API_URL"), "/")
	cfg.TikTokUsername = strings.TrimPrefix(viper.GetString("TIKTOK_USERNAME"), "@")
	cfg.TikTokBaseURL = strings.TrimRight(viper.GetString("TIKTOK_BASE_URL"), "/")
	cfg.UpstreamHTTPTimeout = durationOrDefault("UPSTREAM_HTTP_TIMEOUT", 10*time.Second)

	// Log warnings for missing provider credentials
	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Stripe payments will not function.")
	}
	if cfg.PayPalClientID == "" || cfg.PayPalClientSecret == "" {
		log.Println("Warning: PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET not set. PayPal payments will not function.")
	}
	if cfg.RecaptchaSecret == "" {
		log.Println("Warning: RECAPTCHA_SECRET not set. reCAPTCHA verification will reject all tokens.")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// AdminTokenSigner returns the signer for admin access tokens.
func (c *Config) AdminTokenSigner() utils.AdminTokenSigner {
	return utils.AdminTokenSigner{Secret: c.JWTSecret, Issuer: c.JWTIssuer, Expiry: c.JWTExpiryDuration}
}

// durationOrDefault parses a duration key, falling back to def on invalid input.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
