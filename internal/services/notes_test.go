package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avatar-tools/logscan/internal/services"
	"github.com/avatar-tools/logscan/internal/store"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

var _ = Describe("NotesService", func() {
	var (
		ctx context.Context
		db  *sql.DB
		srv *services.NotesService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		s := store.NewStore(db)
		Expect(s.Migrate(ctx)).To(Succeed())

		srv = services.NewNotesService(s.Notes())
	})

	AfterEach(func() {
		db.Close()
	})

	It("should require an avatar", func() {
		_, err := srv.Get(ctx, "")
		Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())

		_, err = srv.Set(ctx, "", "text")
		Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())
	})

	It("should set and return notes", func() {
		n, err := srv.Set(ctx, "Hero", "camp at the ruins")
		Expect(err).NotTo(HaveOccurred())
		Expect(n.Text).To(Equal("camp at the ruins"))

		got, err := srv.Get(ctx, "Hero")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Text).To(Equal("camp at the ruins"))

		all, err := srv.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
	})

	It("should delete notes", func() {
		_, err := srv.Set(ctx, "Hero", "x")
		Expect(err).NotTo(HaveOccurred())

		Expect(srv.Delete(ctx, "Hero")).To(Succeed())

		_, err = srv.Get(ctx, "Hero")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})
})
