package mongostore

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// newMockT creates a test harness backed by a mocked deployment
func newMockT(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// cursor builds a single batch find reply for the collection
func cursor(mt *mtest.T, collection string, docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, mt.DB.Name()+"."+collection, mtest.FirstBatch, docs...)
}

// countReply builds the aggregate reply CountDocuments expects
func countReply(mt *mtest.T, collection string, n int32) bson.D {
	if n == 0 {
		return cursor(mt, collection)
	}
	return cursor(mt, collection, bson.D{{Key: "n", Value: n}})
}

// updateReply builds a write reply with n matched documents
func updateReply(n int32) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: n},
		bson.E{Key: "nModified", Value: n},
	)
}

func commandError() bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"})
}
