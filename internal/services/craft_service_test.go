package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental/internal/models"
	"elemental/internal/services"
	"elemental/internal/tests/mocks"
)

type stubChatModel struct {
	reply string
	input []*schema.Message
}

func (m *stubChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.input = input
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m *stubChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func TestCraftService_Combine(t *testing.T) {
	repo := mocks.NewConfigRepositoryMock(storedRecord())
	keys := services.NewKeyringService(keyring.NewArrayKeyring(nil))
	require.NoError(t, keys.StoreApiKey("openai", "sk-test"))

	stub := &stubChatModel{reply: "💨 Steam"}
	var gotRecord models.ConfigRecord
	var gotKey string
	factory := func(ctx context.Context, record models.ConfigRecord, apiKey string) (model.BaseChatModel, error) {
		gotRecord, gotKey = record, apiKey
		return stub, nil
	}

	svc := services.NewCraftService(repo, newCatalog(t), keys, factory, mocks.NewLoggerMock())
	svc.Startup(context.Background())

	result, err := svc.Combine("Fire", "Water")
	require.NoError(t, err)
	assert.Equal(t, "💨 Steam", result)
	assert.Equal(t, "sk-test", gotKey)
	assert.Equal(t, storedRecord(), gotRecord)
	require.NotEmpty(t, stub.input)
	assert.Equal(t, "Fire + Water", stub.input[len(stub.input)-1].Content)
	// system + one example turn + input
	assert.Len(t, stub.input, 4)
}

func TestCraftService_LocalModelWithoutKey(t *testing.T) {
	record := storedRecord()
	record.Model = "llama3"
	repo := mocks.NewConfigRepositoryMock(record)
	keys := services.NewKeyringService(keyring.NewArrayKeyring(nil))
	require.NoError(t, keys.StoreApiKey("openai", "sk-test"))
	log := mocks.NewLoggerMock()

	var gotKey = "unset"
	factory := func(ctx context.Context, record models.ConfigRecord, apiKey string) (model.BaseChatModel, error) {
		gotKey = apiKey
		return &stubChatModel{reply: "🌋 Lava"}, nil
	}

	svc := services.NewCraftService(repo, newCatalog(t), keys, factory, log)
	result, err := svc.Combine("Earth", "Fire")
	require.NoError(t, err)
	assert.Equal(t, "🌋 Lava", result)
	assert.Equal(t, "", gotKey)
	assert.Equal(t, 1, log.Count("warning"))
}

func TestCraftService_EmptyInput(t *testing.T) {
	svc := services.NewCraftService(mocks.NewConfigRepositoryMock(storedRecord()), nil, nil, nil, mocks.NewLoggerMock())
	_, err := svc.Combine(" ", "")
	assert.Error(t, err)
}

func TestCraftService_ConfigError(t *testing.T) {
	storeErr := errors.New("store unavailable")
	repo := &mocks.ConfigRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.ConfigRecord, error) { return nil, storeErr },
	}
	svc := services.NewCraftService(repo, nil, nil, nil, mocks.NewLoggerMock())

	_, err := svc.Combine("Earth", "Water")
	assert.ErrorIs(t, err, storeErr)
}

func TestCraftService_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	factory := func(ctx context.Context, record models.ConfigRecord, apiKey string) (model.BaseChatModel, error) {
		return nil, boom
	}
	svc := services.NewCraftService(mocks.NewConfigRepositoryMock(storedRecord()), nil, nil, factory, mocks.NewLoggerMock())

	_, err := svc.Combine("Earth", "Water")
	assert.ErrorIs(t, err, boom)
}
