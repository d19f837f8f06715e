package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/avatar-tools/logscan/internal/config"
)

var _ = Describe("Configuration", func() {
	var (
		fs *pflag.FlagSet
		v  *viper.Viper
	)

	BeforeEach(func() {
		defaults, err := config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())

		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		v = viper.New()
		Expect(config.Bind(fs, v, defaults)).To(Succeed())
	})

	It("should apply defaults", func() {
		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Server.ServerMode).To(Equal("dev"))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Server.ShutdownTimeout).To(Equal(10 * time.Second))
		Expect(cfg.Store.Path).To(Equal("logscan.duckdb"))
		Expect(cfg.Auth.Enabled).To(BeFalse())
		Expect(cfg.Auth.Issuer).To(Equal("logscan"))
		Expect(cfg.LogFormat).To(Equal("console"))
		Expect(cfg.LogLevel).To(Equal("info"))
	})

	It("should read flags", func() {
		Expect(fs.Parse([]string{"--http-port", "9090", "--log-folder", "/logs", "--workers", "4"})).To(Succeed())

		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.HTTPPort).To(Equal(9090))
		Expect(cfg.Logs.Folder).To(Equal("/logs"))
		Expect(cfg.Logs.Workers).To(Equal(4))
	})

	It("should read the environment", func() {
		GinkgoT().Setenv("LOGSCAN_LOGS_FOLDER", "/from/env")
		GinkgoT().Setenv("LOGSCAN_SERVER_HTTP_PORT", "7000")

		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Logs.Folder).To(Equal("/from/env"))
		Expect(cfg.Server.HTTPPort).To(Equal(7000))
	})

	It("should prefer flags over the environment", func() {
		GinkgoT().Setenv("LOGSCAN_LOGS_FOLDER", "/from/env")
		Expect(fs.Parse([]string{"--log-folder", "/from/flag"})).To(Succeed())

		cfg, err := config.Load(v, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Logs.Folder).To(Equal("/from/flag"))
	})

	It("should read a config file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "logscan.yaml")
		content := "logs:\n  folder: /from/file\n  avatar: Hero\nlog-level: debug\n"
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

		cfg, err := config.Load(v, path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Logs.Folder).To(Equal("/from/file"))
		Expect(cfg.Logs.Avatar).To(Equal("Hero"))
		Expect(cfg.LogLevel).To(Equal("debug"))
	})

	It("should fail on a missing config file", func() {
		_, err := config.Load(v, filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})

	DescribeTable("Validate",
		func(mutate func(*config.Configuration), valid bool) {
			cfg, err := config.NewConfigurationWithDefaults()
			Expect(err).NotTo(HaveOccurred())
			mutate(cfg)

			if valid {
				Expect(cfg.Validate()).To(Succeed())
			} else {
				Expect(cfg.Validate()).NotTo(Succeed())
			}
		},
		Entry("defaults", func(c *config.Configuration) {}, true),
		Entry("prod mode", func(c *config.Configuration) { c.Server.ServerMode = "prod" }, true),
		Entry("unknown mode", func(c *config.Configuration) { c.Server.ServerMode = "staging" }, false),
		Entry("port out of range", func(c *config.Configuration) { c.Server.HTTPPort = 70000 }, false),
		Entry("unknown log format", func(c *config.Configuration) { c.LogFormat = "xml" }, false),
		Entry("negative workers", func(c *config.Configuration) { c.Logs.Workers = -1 }, false),
		Entry("auth without secret", func(c *config.Configuration) { c.Auth.Enabled = true }, false),
		Entry("auth with secret", func(c *config.Configuration) {
			c.Auth.Enabled = true
			c.Auth.Secret = "s3cret"
		}, true),
	)

	It("should mask the secret in the debug map", func() {
		cfg, err := config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())
		cfg.Auth.Secret = "s3cret"

		Expect(cfg.DebugMap()).To(HaveKeyWithValue("auth.secret", "(sensitive)"))
	})
})
