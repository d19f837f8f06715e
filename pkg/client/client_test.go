package client_test

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/avatar-tools/logscan/api/v1"
	"github.com/avatar-tools/logscan/internal/config"
	"github.com/avatar-tools/logscan/internal/handlers"
	"github.com/avatar-tools/logscan/internal/models"
	"github.com/avatar-tools/logscan/internal/server"
	"github.com/avatar-tools/logscan/internal/server/middlewares"
	"github.com/avatar-tools/logscan/internal/services"
	"github.com/avatar-tools/logscan/internal/store"
	"github.com/avatar-tools/logscan/pkg/client"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

const secret = "s3cret"

var _ = Describe("Client", func() {
	var (
		ctx  context.Context
		db   *sql.DB
		logs *services.LogService
		ts   *httptest.Server
		c    *client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()

		dir := GinkgoT().TempDir()
		content := "[5/1/2024 9:00:00 AM] AdventurerLevel: 80 AirResistance: 4\n[5/1/2024 9:01:00 AM] Hero: hello there\n"
		Expect(os.WriteFile(filepath.Join(dir, "SotAChatLog_Hero_2024-05-01.txt"), []byte(content), 0o644)).To(Succeed())

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		s := store.NewStore(db)
		Expect(s.Migrate(ctx)).To(Succeed())

		logs = services.NewLogService(s.Settings(), 2)
		Expect(logs.SetFolder(ctx, dir)).To(Succeed())
		h := handlers.New(logs, services.NewNotesService(s.Notes()), services.NewExportService(logs))

		cfg, err := config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())
		cfg.Server.ServerMode = "prod"
		cfg.Auth.Enabled = true
		cfg.Auth.Secret = secret

		srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
			v1.RegisterHandlers(router, h)
		})
		Expect(err).NotTo(HaveOccurred())
		ts = httptest.NewServer(srv.Handler())

		token, err := middlewares.NewToken([]byte(secret), cfg.Auth.Issuer, "test", time.Hour)
		Expect(err).NotTo(HaveOccurred())
		c, err = client.NewClient(ts.URL, client.WithToken(token))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ts.Close()
		logs.Close()
		db.Close()
	})

	It("should reject an invalid url", func() {
		_, err := client.NewClient("not a url")
		Expect(err).To(HaveOccurred())
	})

	It("should list avatars and timestamps", func() {
		avatars, err := c.Avatars(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(avatars).To(Equal([]string{"Hero"}))

		stamps, err := c.Timestamps(ctx, "Hero")
		Expect(err).NotTo(HaveOccurred())
		Expect(stamps).To(Equal([]int64{time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC).Unix()}))
	})

	It("should fetch stats that parse back into fields", func() {
		stamp := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC).Unix()

		stats, err := c.Stats(ctx, "Hero", stamp)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Fields()).To(Equal([]models.StatField{
			{Name: "AdventurerLevel", Value: "80"},
			{Name: "AirResistance", Value: "4"},
		}))
	})

	It("should search", func() {
		search, err := models.NewSearch("hello", false)
		Expect(err).NotTo(HaveOccurred())

		result, err := c.Search(ctx, "Hero", search)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Text).To(ContainSubstring("hello there"))
	})

	It("should map 404 to ResourceNotFoundError", func() {
		_, err := c.Notes(ctx, "Hero")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	It("should save notes", func() {
		Expect(c.SetNotes(ctx, "Hero", "remember")).To(Succeed())

		n, err := c.Notes(ctx, "Hero")
		Expect(err).NotTo(HaveOccurred())
		Expect(n.Text).To(Equal("remember"))
	})

	It("should download the stats workbook", func() {
		var buf bytes.Buffer
		Expect(c.Export(ctx, "Hero", &buf)).To(Succeed())
		Expect(buf.Bytes()[:2]).To(Equal([]byte("PK")))
	})

	It("should return settings", func() {
		s, err := c.Settings(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.LogFolder).NotTo(BeEmpty())
	})

	It("should report unauthorized without a token", func() {
		anon, err := client.NewClient(ts.URL)
		Expect(err).NotTo(HaveOccurred())

		_, err = anon.Avatars(ctx)
		Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
	})

	// Given a server failing with 5xx once
	// When a request is sent
	// Then the client retries and succeeds
	It("should retry server errors", func() {
		var calls atomic.Int32
		flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"avatars":["Hero"]}`))
		}))
		defer flaky.Close()

		fc, err := client.NewClient(flaky.URL)
		Expect(err).NotTo(HaveOccurred())

		avatars, err := fc.Avatars(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(avatars).To(Equal([]string{"Hero"}))
		Expect(calls.Load()).To(BeEquivalentTo(2))
	})

	It("should not retry client errors", func() {
		var calls atomic.Int32
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad"}`))
		}))
		defer failing.Close()

		fc, err := client.NewClient(failing.URL)
		Expect(err).NotTo(HaveOccurred())

		_, err = fc.Avatars(ctx)
		Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())
		Expect(calls.Load()).To(BeEquivalentTo(1))
	})
})
