package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/sh5080/utm-checker/pkg/types/models"
)

// fakeDynamo는 테이블 하나를 메모리에 보관하는 DynamoAPI 구현입니다
type fakeDynamo struct {
	exists     bool
	created    *dynamodb.CreateTableInput
	ttl        *dynamodb.UpdateTimeToLiveInput
	items      map[string]map[string]types.AttributeValue
	describeFn func() error
	putErr     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func (f *fakeDynamo) DescribeTable(_ context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeFn != nil {
		if err := f.describeFn(); err != nil {
			return nil, err
		}
	}
	if !f.exists {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: types.TableStatusActive,
		},
	}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, params *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = params
	f.exists = true
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeDynamo) UpdateTimeToLive(_ context.Context, params *dynamodb.UpdateTimeToLiveInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error) {
	f.ttl = params
	return &dynamodb.UpdateTimeToLiveOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key := params.Key["CheckID"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := params.Item["CheckID"].(*types.AttributeValueMemberS).Value
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestCreateTableIfNotExists(t *testing.T) {
	fake := newFakeDynamo()
	repo := NewDynamoCheckRepository(fake, "")

	require.NoError(t, repo.CreateTableIfNotExists(context.Background()))

	require.NotNil(t, fake.created)
	assert.Equal(t, model.TableNameChecks, aws.ToString(fake.created.TableName))
	assert.Equal(t, types.BillingModePayPerRequest, fake.created.BillingMode)
	assert.Equal(t, "CheckID", aws.ToString(fake.created.KeySchema[0].AttributeName))

	require.NotNil(t, fake.ttl)
	assert.Equal(t, "ttl", aws.ToString(fake.ttl.TimeToLiveSpecification.AttributeName))
}

func TestCreateTableIfNotExists_AlreadyExists(t *testing.T) {
	fake := newFakeDynamo()
	fake.exists = true
	repo := NewDynamoCheckRepository(fake, "Checks")

	require.NoError(t, repo.CreateTableIfNotExists(context.Background()))
	assert.Nil(t, fake.created)
	assert.Nil(t, fake.ttl)
}

func TestCreateTableIfNotExists_DescribeError(t *testing.T) {
	fake := newFakeDynamo()
	fake.describeFn = func() error { return errors.New("access denied") }
	repo := NewDynamoCheckRepository(fake, "Checks")

	assert.Error(t, repo.CreateTableIfNotExists(context.Background()))
}

func TestDynamoCheckRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	fake := newFakeDynamo()
	repo := NewDynamoCheckRepository(fake, "Checks")
	repo.now = func() time.Time { return now }

	record := &model.CheckRecord{
		CheckID:   "8a6e0804-2bd0-4672-b79d-d97027f9071a",
		CheckedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
		URL:       "https://example.com/?utm_source=google",
		Source:    "google",
		Medium:    "none",
		Campaign:  "none",
		Category:  "SOURCE_CATEGORY_SEARCH",
		Channel:   "Organic Search",
	}
	require.NoError(t, repo.SaveCheck(ctx, record))

	item := fake.items[record.CheckID]
	require.NotNil(t, item)
	ttl, ok := item["ttl"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "1746187200", ttl.Value)

	got, err := repo.GetCheck(ctx, record.CheckID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.Source, got.Source)
	assert.Equal(t, record.Channel, got.Channel)
	assert.True(t, record.ExpiresAt.Equal(got.ExpiresAt))

	// TTL 삭제 전이라도 만료된 항목은 반환하지 않음
	now = now.Add(25 * time.Hour)
	got, err = repo.GetCheck(ctx, record.CheckID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDynamoCheckRepository_Errors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	repo := NewDynamoCheckRepository(fake, "Checks")

	assert.Error(t, repo.SaveCheck(ctx, &model.CheckRecord{}))

	fake.putErr = errors.New("throttled")
	assert.Error(t, repo.SaveCheck(ctx, &model.CheckRecord{CheckID: "x"}))

	got, err := repo.GetCheck(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.GetCheck(ctx, "")
	assert.Error(t, err)
}
