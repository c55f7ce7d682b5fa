//go:build integration

package firestoredb_test

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/assembly-seeder/internal/catalog"
	"github.com/you-humble/assembly-seeder/internal/credential"
	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/firestoredb"
	"github.com/you-humble/assembly-seeder/internal/service/seeder"
	"github.com/you-humble/assembly-seeder/platform/logger"
	tcfirestore "github.com/you-humble/assembly-seeder/platform/testcontainers/firestore"
)

const emulatorHostKey = "FIRESTORE_EMULATOR_HOST"

var (
	ctx context.Context

	emulator *tcfirestore.Container
	client   *firestore.Client
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Firestore Seeder Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting firestore emulator")
	var err error
	emulator, err = tcfirestore.NewContainer(ctx, tcfirestore.WithProjectID("ikea-assembly"))
	Expect(err).NotTo(HaveOccurred())
	Expect(os.Setenv(emulatorHostKey, emulator.EmulatorHost())).To(Succeed())

	By("connecting with the Firebase service account key")
	path, err := emulator.WriteCredential(GinkgoT().TempDir())
	Expect(err).NotTo(HaveOccurred())
	cred, err := credential.Load(path)
	Expect(err).NotTo(HaveOccurred())
	Expect(cred.ValidateFor(model.StoreDriverFirestore)).To(Succeed())

	client, err = firestoredb.NewClient(ctx, cred, firestoredb.ClientConfig{
		CredentialsFile: path,
		EmulatorHost:    emulator.EmulatorHost(),
	})
	Expect(err).NotTo(HaveOccurred())
	Expect(firestoredb.Ping(ctx, client, 10*time.Second,
		model.CollectionFurniture, model.CollectionCategories)).To(Succeed())
})

var _ = AfterSuite(func() {
	if client != nil {
		Expect(client.Close()).To(Succeed())
	}
	if emulator != nil {
		Expect(emulator.Terminate(ctx)).To(Succeed())
	}
	Expect(os.Unsetenv(emulatorHostKey)).To(Succeed())
})

func docs(collection string) []*firestore.DocumentSnapshot {
	snaps, err := client.Collection(collection).Documents(ctx).GetAll()
	Expect(err).NotTo(HaveOccurred())
	return snaps
}

func purge(collection string) {
	for _, snap := range docs(collection) {
		_, err := snap.Ref.Delete(ctx)
		Expect(err).NotTo(HaveOccurred())
	}
}

func run(mode model.SeedMode, mutate func(c *model.Catalog)) model.Report {
	c, err := catalog.Default()
	Expect(err).NotTo(HaveOccurred())
	if mutate != nil {
		mutate(c)
	}

	rep, err := seeder.NewSeederService(
		firestoredb.NewFurnitureRepository(client, model.CollectionFurniture),
		firestoredb.NewCategoryRepository(client, model.CollectionCategories),
		c,
		seeder.Options{Mode: mode},
	).Run(ctx)
	Expect(err).NotTo(HaveOccurred())
	return rep
}

var _ = Describe("Seeding Firestore", Ordered, func() {
	BeforeEach(func() {
		purge(model.CollectionFurniture)
		purge(model.CollectionCategories)
	})

	It("adds every record with server timestamps", func() {
		rep := run(model.SeedModeAppend, nil)
		Expect(rep.Written()).To(Equal(8))
		Expect(docs(model.CollectionFurniture)).To(HaveLen(2))
		Expect(docs(model.CollectionCategories)).To(HaveLen(6))

		snap, err := client.Collection(model.CollectionFurniture).Doc(rep.Furniture[0].ID).Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		data := snap.Data()
		Expect(data).To(HaveKeyWithValue("name", "MALM Bed Frame"))
		Expect(data).To(HaveKeyWithValue("reviewCount", BeEquivalentTo(127)))
		Expect(data["createdAt"]).To(BeAssignableToTypeOf(time.Time{}))
		Expect(data["updatedAt"]).To(BeAssignableToTypeOf(time.Time{}))
	})

	It("duplicates on a second append run", func() {
		run(model.SeedModeAppend, nil)
		run(model.SeedModeAppend, nil)

		Expect(docs(model.CollectionFurniture)).To(HaveLen(4))
		Expect(docs(model.CollectionCategories)).To(HaveLen(12))
	})

	It("replaces by name and keeps creation time on upsert", func() {
		first := run(model.SeedModeUpsert, nil)
		before, err := client.Collection(model.CollectionFurniture).Doc(first.Furniture[0].ID).Get(ctx)
		Expect(err).NotTo(HaveOccurred())

		second := run(model.SeedModeUpsert, func(c *model.Catalog) {
			c.Furniture[0].Model3DURL = ""
		})
		after, err := client.Collection(model.CollectionFurniture).Doc(second.Furniture[0].ID).Get(ctx)
		Expect(err).NotTo(HaveOccurred())

		Expect(second.Furniture[0].ID).To(Equal(first.Furniture[0].ID))
		Expect(docs(model.CollectionFurniture)).To(HaveLen(2))
		Expect(docs(model.CollectionCategories)).To(HaveLen(6))
		Expect(after.Data()["createdAt"]).To(Equal(before.Data()["createdAt"]))
		Expect(after.Data()).NotTo(HaveKey("model3dUrl"))
	})
})
