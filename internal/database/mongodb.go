package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/projectpulse/projectpulse-api/internal/models"
)

// ConnectMongoDB establishes a connection to MongoDB
func ConnectMongoDB(uri, dbName string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	logrus.WithField("db", dbName).Info("connected to MongoDB")
	return client, nil
}

// SeedDefaultRoles ensures that the default roles exist in the database and
// that their permission sets are current.
func SeedDefaultRoles(db *mongo.Database) error {
	rolesCollection := db.Collection("roles")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, defaultRole := range models.DefaultRoles {
		filter := bson.M{"name": defaultRole.Name}
		var existingRole models.Role
		err := rolesCollection.FindOne(ctx, filter).Decode(&existingRole)

		switch {
		case err == mongo.ErrNoDocuments:
			if _, err := rolesCollection.InsertOne(ctx, defaultRole); err != nil {
				return err
			}
			logrus.WithField("role", defaultRole.Name).Info("seeded default role")
		case err != nil:
			return err
		default:
			update := bson.M{"$set": bson.M{"permissions": defaultRole.Permissions}}
			if _, err := rolesCollection.UpdateOne(ctx, filter, update); err != nil {
				return err
			}
			logrus.WithField("role", defaultRole.Name).Debug("refreshed default role permissions")
		}
	}
	return nil
}
