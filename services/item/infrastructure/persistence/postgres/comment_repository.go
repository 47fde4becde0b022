package postgres

import (
	"context"
	"fmt"

	"github.com/ku-alexej/shareit/pkg/database"
	"github.com/ku-alexej/shareit/services/item/domain/models"
)

// CommentRepository implements repositories.CommentRepository against
// PostgreSQL.
type CommentRepository struct {
	db *database.Database
}

// NewCommentRepository returns a CommentRepository backed by the given
// connection pool.
func NewCommentRepository(db *database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts the comment and returns it with the author name joined in.
func (r *CommentRepository) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	err := r.db.DB().QueryRowContext(ctx,
		`WITH inserted AS (
		     INSERT INTO comments (text, item_id, author_id, created)
		     VALUES ($1, $2, $3, now())
		     RETURNING id, text, item_id, author_id, created
		 )
		 SELECT i.id, i.text, i.item_id, i.author_id, u.name, i.created
		 FROM inserted i
		 JOIN users u ON u.id = i.author_id`,
		comment.Text, comment.ItemID, comment.AuthorID,
	).Scan(&comment.ID, &comment.Text, &comment.ItemID,
		&comment.AuthorID, &comment.AuthorName, &comment.Created)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &comment, nil
}

// ListByItems returns the comments of the given items, oldest first by id.
func (r *CommentRepository) ListByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		 FROM comments c
		 JOIN users u ON u.id = c.author_id
		 WHERE c.item_id = ANY($1)
		 ORDER BY c.id`,
		itemIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID,
			&c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
