package testcontainers

// Environment overrides for the integration containers.
const (
	MongoImageNameKey = "MONGO_IMAGE_NAME"
	DefaultMongoImage = "mongo:8.0"

	FirestoreImageNameKey = "FIRESTORE_IMAGE_NAME"
	DefaultFirestoreImage = "gcr.io/google.com/cloudsdktool/google-cloud-cli:emulators"

	ProjectLabel = "assembly-seeder"
)
