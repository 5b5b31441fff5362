package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"my-diary-be/internal/constant"
	"my-diary-be/internal/dto"
	"my-diary-be/internal/entity"
	"my-diary-be/internal/pkg/apperror"
	"my-diary-be/internal/repository/contract"
	"my-diary-be/internal/repository/memory"
	"my-diary-be/internal/repository/specification"
	"my-diary-be/internal/repository/unitofwork"
	chatContext "my-diary-be/pkg/chat/context"
	"my-diary-be/pkg/chat/prompt"
	"my-diary-be/pkg/chat/reply"
	"my-diary-be/pkg/llm"
)

// ---- in-memory repositories -------------------------------------------------

type fakeStore struct {
	diaries   []*entity.DiaryEntry
	photos    []*entity.Photo
	people    []*entity.Person
	locations []*entity.LocationLog
	turns     []*entity.ChatTurn
	nextTurn  uint

	turnCreateErr    error
	failTurnCreateAt int // 1-based Create call that fails, 0 = never
	turnCreates      int
}

func diaryMatches(d *entity.DiaryEntry, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if d.Id != sp.ID {
				return false
			}
		case specification.OwnedByUser:
			if d.UserId != sp.UserID {
				return false
			}
		case specification.ByDate:
			if d.Date.Format("2006-01-02") != sp.Date.Format("2006-01-02") {
				return false
			}
		case specification.ByYearMonth:
			if d.Date.Year() != sp.Year || d.Date.Month() != sp.Month {
				return false
			}
		}
	}
	return true
}

type fakeDiaryRepo struct{ store *fakeStore }

func (r *fakeDiaryRepo) Create(_ context.Context, diary *entity.DiaryEntry) error {
	r.store.diaries = append(r.store.diaries, diary)
	return nil
}

func (r *fakeDiaryRepo) Update(_ context.Context, _ *entity.DiaryEntry) error { return nil }
func (r *fakeDiaryRepo) Delete(_ context.Context, _ uint) error               { return nil }

func (r *fakeDiaryRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.DiaryEntry, error) {
	for _, d := range r.store.diaries {
		if diaryMatches(d, specs) {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDiaryRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.DiaryEntry, error) {
	var out []*entity.DiaryEntry
	for _, d := range r.store.diaries {
		if diaryMatches(d, specs) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDiaryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakePhotoRepo struct{ store *fakeStore }

func (r *fakePhotoRepo) Create(_ context.Context, photo *entity.Photo) error {
	r.store.photos = append(r.store.photos, photo)
	return nil
}

func (r *fakePhotoRepo) UpdateDescription(_ context.Context, id uint, description string) error {
	for _, p := range r.store.photos {
		if p.Id == id {
			p.Description = description
		}
	}
	return nil
}

func (r *fakePhotoRepo) Delete(_ context.Context, _ uint) error { return nil }

func (r *fakePhotoRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Photo, error) {
	found, _ := r.FindAll(ctx, specs...)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *fakePhotoRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Photo, error) {
	var out []*entity.Photo
	for _, p := range r.store.photos {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByID:
				if p.Id != sp.ID {
					match = false
				}
			case specification.ByDiaryID:
				if p.DiaryId != sp.DiaryID {
					match = false
				}
			}
		}
		if match {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeChatTurnRepo struct{ store *fakeStore }

func (r *fakeChatTurnRepo) Create(_ context.Context, turn *entity.ChatTurn) error {
	if r.store.turnCreateErr != nil {
		return r.store.turnCreateErr
	}
	r.store.turnCreates++
	if r.store.failTurnCreateAt > 0 && r.store.turnCreates == r.store.failTurnCreateAt {
		return errors.New("insert rejected")
	}
	r.store.nextTurn++
	turn.Id = r.store.nextTurn
	r.store.turns = append(r.store.turns, turn)
	return nil
}

func (r *fakeChatTurnRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error) {
	var out []*entity.ChatTurn
	for _, turn := range r.store.turns {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByDiaryID:
				if turn.DiaryId != sp.DiaryID {
					match = false
				}
			case specification.WrittenBy:
				if turn.WrittenBy != sp.Role {
					match = false
				}
			}
		}
		if match {
			out = append(out, turn)
		}
	}
	return out, nil
}

func (r *fakeChatTurnRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakePersonRepo struct{ store *fakeStore }

func (r *fakePersonRepo) Create(_ context.Context, person *entity.Person) error {
	person.Id = uint(len(r.store.people) + 1)
	r.store.people = append(r.store.people, person)
	return nil
}

func (r *fakePersonRepo) Delete(_ context.Context, id uint) error {
	var kept []*entity.Person
	for _, p := range r.store.people {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.store.people = kept
	return nil
}

func (r *fakePersonRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Person, error) {
	found, _ := r.FindAll(ctx, specs...)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *fakePersonRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Person, error) {
	var out []*entity.Person
	for _, p := range r.store.people {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByID:
				if p.Id != sp.ID {
					match = false
				}
			case specification.ByDiaryID:
				if p.DiaryId != sp.DiaryID {
					match = false
				}
			}
		}
		if match {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeLocationRepo struct{ store *fakeStore }

func (r *fakeLocationRepo) Create(_ context.Context, location *entity.LocationLog) error {
	location.Id = uint(len(r.store.locations) + 1)
	r.store.locations = append(r.store.locations, location)
	return nil
}

func (r *fakeLocationRepo) Delete(_ context.Context, id uint) error {
	var kept []*entity.LocationLog
	for _, l := range r.store.locations {
		if l.Id != id {
			kept = append(kept, l)
		}
	}
	r.store.locations = kept
	return nil
}

func (r *fakeLocationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LocationLog, error) {
	found, _ := r.FindAll(ctx, specs...)
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (r *fakeLocationRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.LocationLog, error) {
	var out []*entity.LocationLog
	for _, l := range r.store.locations {
		match := true
		for _, s := range specs {
			switch sp := s.(type) {
			case specification.ByID:
				if l.Id != sp.ID {
					match = false
				}
			case specification.ByDiaryID:
				if l.DiaryId != sp.DiaryID {
					match = false
				}
			}
		}
		if match {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeUow struct {
	store *fakeStore

	txActive   bool
	txTurnMark int
}

func (u *fakeUow) Begin(_ context.Context) error {
	u.txActive = true
	u.txTurnMark = len(u.store.turns)
	return nil
}

func (u *fakeUow) Commit() error {
	u.txActive = false
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.txActive {
		return errors.New("no transaction to rollback")
	}
	u.store.turns = u.store.turns[:u.txTurnMark]
	u.txActive = false
	return nil
}

func (u *fakeUow) DiaryRepository() contract.DiaryRepository       { return &fakeDiaryRepo{store: u.store} }
func (u *fakeUow) PhotoRepository() contract.PhotoRepository       { return &fakePhotoRepo{store: u.store} }
func (u *fakeUow) ChatTurnRepository() contract.ChatTurnRepository { return &fakeChatTurnRepo{store: u.store} }

func (u *fakeUow) PersonRepository() contract.PersonRepository { return &fakePersonRepo{store: u.store} }

func (u *fakeUow) LocationLogRepository() contract.LocationLogRepository {
	return &fakeLocationRepo{store: u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

// ---- stub provider ----------------------------------------------------------

type stubProvider struct {
	response string
	err      error
	prompts  []string
}

func (p *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return p.response, p.err
}

func (p *stubProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

type nopLogger struct{}

func (nopLogger) Debug(_, _ string, _ map[string]interface{}) {}
func (nopLogger) Info(_, _ string, _ map[string]interface{})  {}
func (nopLogger) Warn(_, _ string, _ map[string]interface{})  {}
func (nopLogger) Error(_, _ string, _ map[string]interface{}) {}
func (nopLogger) Sync() error                                 { return nil }

// ---- fixture ----------------------------------------------------------------

const (
	testUser    = "user-1"
	testDiaryId = uint(7)
)

type conversationFixture struct {
	store    *fakeStore
	provider *stubProvider
	guard    *memory.TurnGuard
	svc      IConversationService
}

func newConversationFixture() *conversationFixture {
	store := &fakeStore{
		diaries: []*entity.DiaryEntry{
			{
				Id:      testDiaryId,
				UserId:  testUser,
				Date:    time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
				Content: "오늘은 친구들과 한강에 갔다.",
			},
		},
	}
	provider := &stubProvider{
		response: `{"reply": "오늘 하루는 어떠셨나요?", "edit_intent": false}`,
	}
	factory := &fakeFactory{store: store}
	guard := memory.NewTurnGuard()

	svc := NewConversationService(
		factory,
		chatContext.NewBuilder(factory),
		prompt.NewCompiler(),
		reply.NewGenerator(provider),
		guard,
		nopLogger{},
	)

	return &conversationFixture{
		store:    store,
		provider: provider,
		guard:    guard,
		svc:      svc,
	}
}

func (f *conversationFixture) seedTurns(contents ...string) {
	for i, content := range contents {
		role := entity.ChatTurnRoleAi
		if i%2 == 1 {
			role = entity.ChatTurnRoleUser
		}
		f.store.nextTurn++
		f.store.turns = append(f.store.turns, &entity.ChatTurn{
			Id:        f.store.nextTurn,
			DiaryId:   testDiaryId,
			Content:   content,
			WrittenBy: role,
		})
	}
}

// ---- GetTranscript ----------------------------------------------------------

func TestGetTranscriptSeedsConversation(t *testing.T) {
	f := newConversationFixture()

	res, err := f.svc.GetTranscript(context.Background(), testUser, testDiaryId)
	require.NoError(t, err)

	require.Len(t, res.Chats, 2)
	assert.Equal(t, dto.ChatTurnDTO{By: "ai", Text: constant.SeedGreeting}, res.Chats[0])
	assert.Equal(t, dto.ChatTurnDTO{By: "ai", Text: "오늘 하루는 어떠셨나요?"}, res.Chats[1])
	assert.Equal(t, constant.SeedCandidates, res.Candidates)

	require.Len(t, f.store.turns, 2)
	assert.Equal(t, entity.ChatTurnRoleAi, f.store.turns[0].WrittenBy)
	assert.Equal(t, entity.ChatTurnRoleAi, f.store.turns[1].WrittenBy)
}

func TestGetTranscriptIsIdempotent(t *testing.T) {
	f := newConversationFixture()

	_, err := f.svc.GetTranscript(context.Background(), testUser, testDiaryId)
	require.NoError(t, err)

	res, err := f.svc.GetTranscript(context.Background(), testUser, testDiaryId)
	require.NoError(t, err)

	assert.Len(t, res.Chats, 2)
	assert.Len(t, f.store.turns, 2, "repeated reads must not seed again")
	assert.Equal(t, constant.SeedCandidates, res.Candidates,
		"candidates stay until the first user turn")
	assert.Len(t, f.provider.prompts, 1, "only the first read generates")
}

func TestGetTranscriptSeedFailureLeavesNothing(t *testing.T) {
	f := newConversationFixture()
	f.provider.err = errors.New("upstream 500")

	_, err := f.svc.GetTranscript(context.Background(), testUser, testDiaryId)

	var genErr *apperror.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Empty(t, f.store.turns, "a failed seed must not persist partial turns")

	// The next read retries from scratch.
	f.provider.err = nil
	res, err := f.svc.GetTranscript(context.Background(), testUser, testDiaryId)
	require.NoError(t, err)
	assert.Len(t, res.Chats, 2)
}

func TestGetTranscriptPartialSeedRollsBack(t *testing.T) {
	f := newConversationFixture()
	f.store.failTurnCreateAt = 2

	_, err := f.svc.GetTranscript(context.Background(), testUser, testDiaryId)

	var persErr *apperror.PersistenceError
	require.ErrorAs(t, err, &persErr)
	assert.Empty(t, f.store.turns,
		"a greeting without its question must not survive, or seeding never retries")

	// With the partial write rolled back, the next read seeds both turns.
	res, err := f.svc.GetTranscript(context.Background(), testUser, testDiaryId)
	require.NoError(t, err)
	assert.Len(t, res.Chats, 2)
	assert.Len(t, f.store.turns, 2)
}

func TestGetTranscriptUnknownDiary(t *testing.T) {
	f := newConversationFixture()

	_, err := f.svc.GetTranscript(context.Background(), testUser, 999)

	var nfErr *apperror.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestGetTranscriptForeignDiary(t *testing.T) {
	f := newConversationFixture()

	_, err := f.svc.GetTranscript(context.Background(), "someone-else", testDiaryId)

	var nfErr *apperror.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	assert.Empty(t, f.store.turns)
}

// ---- SendMessage ------------------------------------------------------------

func TestSendMessagePersistsBothTurns(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting, "ignored-user-slot")
	f.store.turns[1].WrittenBy = entity.ChatTurnRoleAi
	f.store.turns[1].Content = "무엇을 하셨나요?"

	res, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "친구들과 자전거를 탔어",
	})
	require.NoError(t, err)

	require.Len(t, res.Chats, 4)
	assert.Equal(t, dto.ChatTurnDTO{By: "user", Text: "친구들과 자전거를 탔어"}, res.Chats[2])
	assert.Equal(t, dto.ChatTurnDTO{By: "ai", Text: "오늘 하루는 어떠셨나요?"}, res.Chats[3])

	require.Len(t, f.store.turns, 4)
	assert.Equal(t, entity.ChatTurnRoleUser, f.store.turns[2].WrittenBy)
	assert.Equal(t, entity.ChatTurnRoleAi, f.store.turns[3].WrittenBy)
}

func TestSendMessagePromptUsesPreTurnSnapshot(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting)

	_, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "오늘 일기 써줘",
	})
	require.NoError(t, err)

	require.Len(t, f.provider.prompts, 1)
	compiled := f.provider.prompts[0]

	assert.Contains(t, compiled, "<user_message>\n오늘 일기 써줘\n</user_message>")
	assert.Contains(t, compiled, "지금까지 사용자 메시지 수: 0")

	// The in-flight message must not leak into the history block.
	historyBlock := compiled[strings.Index(compiled, "<chat_history>"):strings.Index(compiled, "</chat_history>")]
	assert.NotContains(t, historyBlock, "오늘 일기 써줘")
}

func TestSendMessagePromptSkipsPlaceholderCaptions(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting)
	f.store.photos = []*entity.Photo{
		{Id: 1, DiaryId: testDiaryId, Description: constant.PhotoDefaultDescription},
		{Id: 2, DiaryId: testDiaryId, Description: "한강에서 자전거 타는 모습"},
		{Id: 3, DiaryId: testDiaryId, Description: ""},
	}

	_, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "사진 봤어?",
	})
	require.NoError(t, err)

	require.Len(t, f.provider.prompts, 1)
	compiled := f.provider.prompts[0]
	assert.Contains(t, compiled, "사진 설명: 한강에서 자전거 타는 모습")
	assert.NotContains(t, compiled, constant.PhotoDefaultDescription)
}

func TestSendMessageGenerationFailureKeepsUserTurn(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting)
	f.provider.err = errors.New("timeout")

	_, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "오늘 뭐 했는지 말해줄게",
	})

	var genErr *apperror.GenerationError
	require.ErrorAs(t, err, &genErr)

	require.Len(t, f.store.turns, 2, "the user turn stays persisted")
	last := f.store.turns[len(f.store.turns)-1]
	assert.Equal(t, entity.ChatTurnRoleUser, last.WrittenBy)
	assert.Equal(t, "오늘 뭐 했는지 말해줄게", last.Content)
}

func TestSendMessageClearsEarlyEditIntent(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting)
	f.provider.response = `{"reply": "일기를 써드렸어요!", "edit_intent": true, "edited_text": "오늘은 즐거운 하루였다."}`

	// First user message: whatever the model claims, no edit yet.
	res, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "그냥 일기써줘",
	})
	require.NoError(t, err)

	assert.False(t, res.EditIntent)
	assert.Nil(t, res.EditedText)
}

func TestSendMessageEditRoundTrip(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting, "친구들과 놀았어", "재미있었겠네요! 어디서 놀았나요?")
	f.provider.response = `{"reply": "일기를 고쳤어요.", "edit_intent": true, "edited_text": "오늘은 한강에서 친구들과 놀았다."}`

	res, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "좀 더 자세하게 고쳐줘",
	})
	require.NoError(t, err)

	assert.True(t, res.EditIntent)
	require.NotNil(t, res.EditedText)
	assert.Equal(t, "오늘은 한강에서 친구들과 놀았다.", *res.EditedText)
}

func TestSendMessageBusyDiary(t *testing.T) {
	f := newConversationFixture()
	require.True(t, f.guard.Acquire(testDiaryId))
	defer f.guard.Release(testDiaryId)

	_, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "안녕",
	})

	var busyErr *apperror.ConversationBusyError
	require.ErrorAs(t, err, &busyErr)
	assert.Equal(t, testDiaryId, busyErr.DiaryId)
	assert.Empty(t, f.store.turns)
}

func TestSendMessageReleasesGuard(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting)

	for i := 0; i < 3; i++ {
		_, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
			Message: fmt.Sprintf("메시지 %d", i),
		})
		require.NoError(t, err, "sequential sends must not see a stale guard")
	}
}

func TestSendMessagePersistenceFailure(t *testing.T) {
	f := newConversationFixture()
	f.seedTurns(constant.SeedGreeting)
	f.store.turnCreateErr = errors.New("disk full")

	_, err := f.svc.SendMessage(context.Background(), testUser, testDiaryId, &dto.SendChatRequest{
		Message: "안녕",
	})

	var persErr *apperror.PersistenceError
	require.ErrorAs(t, err, &persErr)
	assert.Empty(t, f.provider.prompts, "no generation without a persisted user turn")
}
