package services

// Hand-written fake repositories for service tests.
//
// The fakes store entities in maps and count mutation calls, so tests can
// assert not just the returned error but also that a failed precondition
// left the store untouched.

import (
	"context"
	"fmt"
	"sort"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

// ─── fakeUserRepo ───

type fakeUserRepo struct {
	users     map[int64]*models.User
	nextID    int64
	following map[int64][]int64 // follower → followees, insertion order

	createCalls int
	updateCalls int
	deleteCalls int
	followCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[int64]*models.User),
		nextID:    1,
		following: make(map[int64][]int64),
	}
}

func (f *fakeUserRepo) addUser(username, email string) *models.User {
	u := &models.User{ID: f.nextID, Username: username, Email: email}
	f.users[u.ID] = u
	f.nextID++
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.createCalls++
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user not found", pkg.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: user not found", pkg.ErrNotFound)
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.users[id])
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id int64, username, email, passwordHash, image string) error {
	f.updateCalls++
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("%w: user not found", pkg.ErrNotFound)
	}
	u.Username, u.Email, u.PasswordHash, u.Image = username, email, passwordHash, image
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("%w: user not found", pkg.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Follow(ctx context.Context, followerID, followeeID int64) error {
	f.followCalls++
	for _, id := range f.following[followerID] {
		if id == followeeID {
			return nil
		}
	}
	f.following[followerID] = append(f.following[followerID], followeeID)
	return nil
}

func (f *fakeUserRepo) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	edges := f.following[followerID]
	for i, id := range edges {
		if id == followeeID {
			f.following[followerID] = append(edges[:i], edges[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	out := []models.User{}
	for follower, followees := range f.following {
		for _, id := range followees {
			if id == userID {
				if u, ok := f.users[follower]; ok {
					out = append(out, *u)
				}
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	out := []models.User{}
	for _, id := range f.following[userID] {
		if u, ok := f.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

// ─── fakePostRepo ───

type fakePostRepo struct {
	posts  map[int64]*models.Post
	nextID int64

	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*models.Post), nextID: 1}
}

func (f *fakePostRepo) addPost(userID int64, title string) *models.Post {
	p := &models.Post{ID: f.nextID, UserID: userID, Title: title, Visibility: models.VisibilityPublic}
	f.posts[p.ID] = p
	f.nextID++
	return p
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	f.createCalls++
	post.ID = f.nextID
	f.nextID++
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: post not found", pkg.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (f *fakePostRepo) GetAll(ctx context.Context) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePostRepo) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if p.GroupID == groupID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) HomeFeed(ctx context.Context, userID int64) ([]models.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) GroupsFeed(ctx context.Context, userID int64) ([]models.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id int64, title, content string, visibility models.PostVisibility, tag models.PostTag) error {
	f.updateCalls++
	p, ok := f.posts[id]
	if !ok {
		return fmt.Errorf("%w: post not found", pkg.ErrNotFound)
	}
	p.Title, p.Content, p.Visibility, p.Tag = title, content, visibility, tag
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.posts[id]; !ok {
		return fmt.Errorf("%w: post not found", pkg.ErrNotFound)
	}
	delete(f.posts, id)
	return nil
}

// ─── fakeGroupRepo ───

type fakeGroupRepo struct {
	groups  map[int64]*models.Group
	nextID  int64
	members map[int64][]int64 // groupID → userIDs

	createCalls  int
	updateCalls  int
	deleteCalls  int
	getByIDCalls int
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:  make(map[int64]*models.Group),
		nextID:  1,
		members: make(map[int64][]int64),
	}
}

func (f *fakeGroupRepo) addGroup(name string, adminID int64) *models.Group {
	g := &models.Group{ID: f.nextID, Name: name, AdminID: adminID}
	f.groups[g.ID] = g
	f.members[g.ID] = []int64{adminID}
	f.nextID++
	return g
}

func (f *fakeGroupRepo) Create(ctx context.Context, group *models.Group) error {
	f.createCalls++
	group.ID = f.nextID
	f.nextID++
	stored := *group
	f.groups[group.ID] = &stored
	f.members[group.ID] = []int64{group.AdminID}
	return nil
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	f.getByIDCalls++
	g, ok := f.groups[id]
	if !ok {
		return nil, fmt.Errorf("%w: group not found", pkg.ErrNotFound)
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGroupRepo) GetAll(ctx context.Context) ([]models.Group, error) {
	out := []models.Group{}
	for _, g := range f.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGroupRepo) GetGroupsForUser(ctx context.Context, userID int64) ([]models.Group, error) {
	out := []models.Group{}
	for gid, userIDs := range f.members {
		for _, uid := range userIDs {
			if uid == userID {
				out = append(out, *f.groups[gid])
			}
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) GetUsersFromGroup(ctx context.Context, groupID int64) ([]models.User, error) {
	out := []models.User{}
	for _, uid := range f.members[groupID] {
		out = append(out, models.User{ID: uid})
	}
	return out, nil
}

func (f *fakeGroupRepo) Update(ctx context.Context, id int64, name, description, image string, adminID int64) error {
	f.updateCalls++
	g, ok := f.groups[id]
	if !ok {
		return fmt.Errorf("%w: group not found", pkg.ErrNotFound)
	}
	g.Name, g.Description, g.Image, g.AdminID = name, description, image, adminID
	return nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.groups[id]; !ok {
		return fmt.Errorf("%w: group not found", pkg.ErrNotFound)
	}
	delete(f.groups, id)
	delete(f.members, id)
	return nil
}

func (f *fakeGroupRepo) AddMember(ctx context.Context, groupID, userID int64) error {
	for _, uid := range f.members[groupID] {
		if uid == userID {
			return nil
		}
	}
	f.members[groupID] = append(f.members[groupID], userID)
	return nil
}

func (f *fakeGroupRepo) RemoveMember(ctx context.Context, groupID, userID int64) error {
	userIDs := f.members[groupID]
	for i, uid := range userIDs {
		if uid == userID {
			f.members[groupID] = append(userIDs[:i], userIDs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: user is not a member", pkg.ErrNotFound)
}

// ─── fakeCommentRepo ───

type fakeCommentRepo struct {
	comments map[int64]*models.Comment
	nextID   int64

	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*models.Comment), nextID: 1}
}

func (f *fakeCommentRepo) addComment(userID, postID int64, content string) *models.Comment {
	c := &models.Comment{ID: f.nextID, UserID: userID, PostID: postID, Content: content}
	f.comments[c.ID] = c
	f.nextID++
	return c
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	f.createCalls++
	comment.ID = f.nextID
	f.nextID++
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, fmt.Errorf("%w: comment not found", pkg.ErrNotFound)
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCommentRepo) GetAll(ctx context.Context) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCommentRepo) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Update(ctx context.Context, id int64, content string) error {
	f.updateCalls++
	c, ok := f.comments[id]
	if !ok {
		return fmt.Errorf("%w: comment not found", pkg.ErrNotFound)
	}
	c.Content = content
	return nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.comments[id]; !ok {
		return fmt.Errorf("%w: comment not found", pkg.ErrNotFound)
	}
	delete(f.comments, id)
	return nil
}

// ─── fakeReactionRepo ───

type pairKey struct {
	userID int64
	postID int64
}

type fakeReactionRepo struct {
	reactions map[pairKey]models.ReactionType

	upsertCalls int
	deleteCalls int
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[pairKey]models.ReactionType)}
}

func (f *fakeReactionRepo) Upsert(ctx context.Context, reaction *models.Reaction) error {
	f.upsertCalls++
	f.reactions[pairKey{reaction.UserID, reaction.PostID}] = reaction.Type
	return nil
}

func (f *fakeReactionRepo) GetByUserAndPost(ctx context.Context, userID, postID int64) (*models.Reaction, error) {
	t, ok := f.reactions[pairKey{userID, postID}]
	if !ok {
		return nil, fmt.Errorf("%w: reaction not found", pkg.ErrNotFound)
	}
	return &models.Reaction{UserID: userID, PostID: postID, Type: t}, nil
}

func (f *fakeReactionRepo) GetAll(ctx context.Context) ([]models.Reaction, error) {
	out := []models.Reaction{}
	for key, t := range f.reactions {
		out = append(out, models.Reaction{UserID: key.userID, PostID: key.postID, Type: t})
	}
	return out, nil
}

func (f *fakeReactionRepo) GetByPostID(ctx context.Context, postID int64) ([]models.Reaction, error) {
	out := []models.Reaction{}
	for key, t := range f.reactions {
		if key.postID == postID {
			out = append(out, models.Reaction{UserID: key.userID, PostID: key.postID, Type: t})
		}
	}
	return out, nil
}

func (f *fakeReactionRepo) DeleteByUserAndPost(ctx context.Context, userID, postID int64) error {
	f.deleteCalls++
	key := pairKey{userID, postID}
	if _, ok := f.reactions[key]; !ok {
		return fmt.Errorf("%w: reaction does not exist", pkg.ErrNotFound)
	}
	delete(f.reactions, key)
	return nil
}
