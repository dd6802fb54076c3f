package engage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	votesFile    = "votes.json"
	commentsFile = "comments.json"
	boardFile    = "board.json"
)

// ErrPostNotFound is returned when a board post ID does not exist.
var ErrPostNotFound = errors.New("engage: post not found")

// Store persists engagement records as three JSON documents under a data
// directory. Every mutation is a whole-file load-mutate-save round trip
// guarded by a per-category mutex, so concurrent writers in one process
// cannot lose updates. A missing file reads as an empty state.
type Store struct {
	dir string

	votesMu    sync.Mutex
	commentsMu sync.Mutex
	boardMu    sync.Mutex

	now func() time.Time
}

// Open creates the data directory if needed and returns a store rooted
// there.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Like increments the like count for a menu item and returns the updated
// tally. A previously unseen ID starts from zero.
func (s *Store) Like(id string) (VoteCount, error) {
	return s.vote(id, func(v *VoteCount) { v.Likes++ })
}

// Dislike increments the dislike count for a menu item.
func (s *Store) Dislike(id string) (VoteCount, error) {
	return s.vote(id, func(v *VoteCount) { v.Dislikes++ })
}

func (s *Store) vote(id string, mutate func(*VoteCount)) (VoteCount, error) {
	s.votesMu.Lock()
	defer s.votesMu.Unlock()

	votes := map[string]VoteCount{}
	if err := s.load(votesFile, &votes); err != nil {
		return VoteCount{}, err
	}

	v := votes[id]
	mutate(&v)
	votes[id] = v

	if err := s.save(votesFile, votes); err != nil {
		return VoteCount{}, err
	}
	return v, nil
}

// VotesFor returns the tally for a menu item, zero if never voted on.
func (s *Store) VotesFor(id string) (VoteCount, error) {
	s.votesMu.Lock()
	defer s.votesMu.Unlock()

	votes := map[string]VoteCount{}
	if err := s.load(votesFile, &votes); err != nil {
		return VoteCount{}, err
	}
	return votes[id], nil
}

// AddComment appends a comment to a menu item with a server-assigned
// timestamp. Empty text is a no-op. A blank author becomes "anonymous".
func (s *Store) AddComment(id, author, text string) error {
	if text == "" {
		return nil
	}

	s.commentsMu.Lock()
	defer s.commentsMu.Unlock()

	comments := map[string][]Comment{}
	if err := s.load(commentsFile, &comments); err != nil {
		return err
	}

	comments[id] = append(comments[id], s.newComment(author, text))
	return s.save(commentsFile, comments)
}

// CommentsFor returns a menu item's comments in chronological order.
func (s *Store) CommentsFor(id string) ([]Comment, error) {
	s.commentsMu.Lock()
	defer s.commentsMu.Unlock()

	comments := map[string][]Comment{}
	if err := s.load(commentsFile, &comments); err != nil {
		return nil, err
	}
	return comments[id], nil
}

// CreatePost prepends a new board post. The post ID is the list length at
// insertion time.
func (s *Store) CreatePost(title, author, content string) (Post, error) {
	s.boardMu.Lock()
	defer s.boardMu.Unlock()

	var posts []Post
	if err := s.load(boardFile, &posts); err != nil {
		return Post{}, err
	}

	p := Post{
		ID:        len(posts),
		Title:     title,
		Author:    orAnonymous(author),
		Content:   content,
		CreatedAt: s.now(),
	}
	posts = append([]Post{p}, posts...)

	if err := s.save(boardFile, posts); err != nil {
		return Post{}, err
	}
	return p, nil
}

// Posts returns all board posts, newest first.
func (s *Store) Posts() ([]Post, error) {
	s.boardMu.Lock()
	defer s.boardMu.Unlock()

	var posts []Post
	if err := s.load(boardFile, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// AddPostComment appends a comment to the board post with the given ID.
// Empty text is a no-op.
func (s *Store) AddPostComment(postID int, author, text string) error {
	if text == "" {
		return nil
	}

	s.boardMu.Lock()
	defer s.boardMu.Unlock()

	var posts []Post
	if err := s.load(boardFile, &posts); err != nil {
		return err
	}

	for i := range posts {
		if posts[i].ID == postID {
			posts[i].Comments = append(posts[i].Comments, s.newComment(author, text))
			return s.save(boardFile, posts)
		}
	}
	return fmt.Errorf("%w: %d", ErrPostNotFound, postID)
}

func (s *Store) newComment(author, text string) Comment {
	return Comment{
		Author:    orAnonymous(author),
		Text:      text,
		CreatedAt: s.now(),
	}
}

func orAnonymous(author string) string {
	if author == "" {
		return DefaultAuthor
	}
	return author
}

// load reads one category document. A missing file leaves v at its zero
// value, which is the first-use bootstrap state.
func (s *Store) load(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// save rewrites one category document in full. Documents stay indented and
// UTF-8 so they remain hand-readable.
func (s *Store) save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
