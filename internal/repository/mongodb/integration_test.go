//go:build integration

package mongodb_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/assembly-seeder/internal/catalog"
	"github.com/you-humble/assembly-seeder/internal/credential"
	"github.com/you-humble/assembly-seeder/internal/model"
	"github.com/you-humble/assembly-seeder/internal/repository/mongodb"
	"github.com/you-humble/assembly-seeder/internal/service/seeder"
	"github.com/you-humble/assembly-seeder/platform/logger"
	tcmongo "github.com/you-humble/assembly-seeder/platform/testcontainers/mongo"
	tcnetwork "github.com/you-humble/assembly-seeder/platform/testcontainers/network"
)

var (
	ctx context.Context

	net    *tcnetwork.Network
	mongoC *tcmongo.Container

	client     *mongo.Client
	furniture  *mongo.Collection
	categories *mongo.Collection
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MongoDB Seeder Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("creating isolated docker network")
	var err error
	net, err = tcnetwork.NewNetwork(ctx, "mongodb_integration")
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = tcmongo.NewContainer(ctx,
		tcmongo.WithNetworkName(net.Name()),
		tcmongo.WithAuth("seeder_admin", "seed123Pw_x"),
	)
	Expect(err).NotTo(HaveOccurred())

	By("connecting with the service credential")
	path, err := mongoC.WriteCredential(GinkgoT().TempDir())
	Expect(err).NotTo(HaveOccurred())
	cred, err := credential.Load(path)
	Expect(err).NotTo(HaveOccurred())
	Expect(cred.ValidateFor(model.StoreDriverMongo)).To(Succeed())

	client, err = mongodb.Connect(ctx, cred, 10*time.Second)
	Expect(err).NotTo(HaveOccurred())

	db := client.Database(cred.ProjectID)
	furniture = db.Collection(model.CollectionFurniture)
	categories = db.Collection(model.CollectionCategories)
	Expect(mongodb.EnsureFurnitureIndexes(ctx, furniture)).To(Succeed())
	Expect(mongodb.EnsureCategoryIndexes(ctx, categories)).To(Succeed())
})

var _ = AfterSuite(func() {
	if client != nil {
		Expect(client.Disconnect(ctx)).To(Succeed())
	}
	if mongoC != nil {
		Expect(mongoC.Terminate(ctx)).To(Succeed())
	}
	if net != nil {
		Expect(net.Remove(ctx)).To(Succeed())
	}
})

func count(coll *mongo.Collection) int64 {
	n, err := coll.CountDocuments(ctx, bson.D{})
	Expect(err).NotTo(HaveOccurred())
	return n
}

func newSeeder(mode model.SeedMode) interface {
	Run(context.Context) (model.Report, error)
} {
	c, err := catalog.Default()
	Expect(err).NotTo(HaveOccurred())

	return seeder.NewSeederService(
		mongodb.NewFurnitureRepository(furniture),
		mongodb.NewCategoryRepository(categories),
		c,
		seeder.Options{Mode: mode},
	)
}

var _ = Describe("Seeding MongoDB", Ordered, func() {
	BeforeEach(func() {
		_, err := furniture.DeleteMany(ctx, bson.D{})
		Expect(err).NotTo(HaveOccurred())
		_, err = categories.DeleteMany(ctx, bson.D{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("appends the catalog next to existing documents", func() {
		_, err := furniture.InsertOne(ctx, bson.D{{Key: "name", Value: "existing"}})
		Expect(err).NotTo(HaveOccurred())

		rep, err := newSeeder(model.SeedModeAppend).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Written()).To(Equal(8))

		Expect(count(furniture)).To(BeEquivalentTo(1 + 2))
		Expect(count(categories)).To(BeEquivalentTo(6))
	})

	It("stores server timestamps and camelCase field names", func() {
		rep, err := newSeeder(model.SeedModeAppend).Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		id, err := bson.ObjectIDFromHex(rep.Furniture[0].ID)
		Expect(err).NotTo(HaveOccurred())

		var doc bson.M
		Expect(furniture.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("name", "MALM Bed Frame"))
		Expect(doc).To(HaveKey("createdAt"))
		Expect(doc).To(HaveKey("updatedAt"))
		Expect(doc).To(HaveKey("imageUrl"))
		Expect(doc).To(HaveKey("steps"))
		Expect(doc).To(HaveKeyWithValue("reviewCount", BeEquivalentTo(127)))
	})

	It("duplicates on a second append run", func() {
		for range 2 {
			_, err := newSeeder(model.SeedModeAppend).Run(ctx)
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(count(furniture)).To(BeEquivalentTo(4))
		Expect(count(categories)).To(BeEquivalentTo(12))
	})

	It("keeps ids and creation time across upsert runs", func() {
		first, err := newSeeder(model.SeedModeUpsert).Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		var before bson.M
		Expect(categories.FindOne(ctx, bson.D{{Key: "name", Value: "Beds"}}).Decode(&before)).To(Succeed())

		second, err := newSeeder(model.SeedModeUpsert).Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		var after bson.M
		Expect(categories.FindOne(ctx, bson.D{{Key: "name", Value: "Beds"}}).Decode(&after)).To(Succeed())

		Expect(count(furniture)).To(BeEquivalentTo(2))
		Expect(count(categories)).To(BeEquivalentTo(6))
		Expect(second.Furniture[0].ID).To(Equal(first.Furniture[0].ID))
		Expect(after["createdAt"]).To(Equal(before["createdAt"]))
	})

	It("drops optional fields the catalog no longer sets on upsert", func() {
		_, err := newSeeder(model.SeedModeUpsert).Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		c, err := catalog.Default()
		Expect(err).NotTo(HaveOccurred())
		c.Furniture[0].Model3DURL = ""
		svc := seeder.NewSeederService(
			mongodb.NewFurnitureRepository(furniture),
			mongodb.NewCategoryRepository(categories),
			c,
			seeder.Options{Mode: model.SeedModeUpsert},
		)
		_, err = svc.Run(ctx)
		Expect(err).NotTo(HaveOccurred())

		var doc bson.M
		Expect(furniture.FindOne(ctx, bson.D{{Key: "name", Value: c.Furniture[0].Name}}).Decode(&doc)).To(Succeed())
		Expect(doc).NotTo(HaveKey("model3dUrl"))
		Expect(count(furniture)).To(BeEquivalentTo(2))
	})
})
