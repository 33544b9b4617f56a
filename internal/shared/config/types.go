package config

import "fmt"

type ServerConfig struct {
	Host                string   `mapstructure:"host"`
	Port                int      `mapstructure:"port"`
	Mode                string   `mapstructure:"mode"`
	BaseURL             string   `mapstructure:"base_url"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	FrontendCallbackURL string   `mapstructure:"frontend_callback_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type OTPConfig struct {
	TTLMinutes         int `mapstructure:"ttl_minutes"`
	ResendWindowMin    int `mapstructure:"resend_window_minutes"`
	MaxVerifyAttempts  int `mapstructure:"max_verify_attempts"`
	RetentionHours     int `mapstructure:"retention_hours"`
	StateTokenTTLMin   int `mapstructure:"state_token_ttl_minutes"`
	SweepIntervalHours int `mapstructure:"sweep_interval_hours"`
}

type JWTConfig struct {
	AccessSecret   string `mapstructure:"access_secret"`
	RefreshSecret  string `mapstructure:"refresh_secret"`
	AccessExpHours int    `mapstructure:"access_exp_hours"`
	RefreshExpDays int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	OTP      OTPConfig      `mapstructure:"otp"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type OAuthConfig struct {
	Google   OAuthProviderConfig `mapstructure:"google"`
	LinkedIn OAuthProviderConfig `mapstructure:"linkedin"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
