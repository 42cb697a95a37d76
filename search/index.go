// Package search maintains a Bluge full-text index over text messages
// so a conversation can be searched without scanning the roster blob.
package search

import (
	"context"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"

	"pocket-chat/domain"
)

type Index struct {
	writer *bluge.Writer
}

func NewIndex(writer *bluge.Writer) *Index {
	return &Index{writer: writer}
}

// IndexMessage indexes the text of a message under its owning user.
// Non-text messages are skipped silently; there is nothing to search.
func (i *Index) IndexMessage(userID uuid.UUID, message domain.ChatMessage) error {
	text, ok := message.Text()
	if !ok {
		return nil
	}
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField("user", userID.String())).
		AddField(bluge.NewTextField("text", text).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the IDs of the user's text messages matching terms,
// best score first.
func (i *Index) Search(ctx context.Context, userID uuid.UUID, terms string, limit int) ([]uuid.UUID, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("text")).
		AddMust(bluge.NewTermQuery(userID.String()).SetField("user"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, parseErr := uuid.ParseBytes(value); parseErr == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}
