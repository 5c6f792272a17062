package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/sh5080/utm-checker/pkg/configs"
	_interface "github.com/sh5080/utm-checker/pkg/interfaces"
	model "github.com/sh5080/utm-checker/pkg/types/models"
)

// DynamoAPI는 사용하는 DynamoDB 클라이언트 메서드입니다 (테스트에서 대체 가능)
type DynamoAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	UpdateTimeToLive(ctx context.Context, params *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoCheckRepository는 검사 결과를 DynamoDB에 저장하고 조회하는 저장소입니다.
type DynamoCheckRepository struct {
	client    DynamoAPI
	tableName string
	now       func() time.Time
}

// 인터페이스 구현 확인
var _ _interface.CheckRepository = (*DynamoCheckRepository)(nil)

// NewDynamoClient는 설정으로 DynamoDB 클라이언트를 생성합니다.
func NewDynamoClient(ctx context.Context, config *configs.EnvConfig) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.AWS.Region),
	}

	// AWS 자격증명이 설정되어 있으면 고정 자격증명, 아니면 기본 프로바이더 체인 사용
	if config.AWS.AccessKeyID != "" && config.AWS.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.AWS.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(config.AWS.DynamoDBEndpoint)
		}
	}), nil
}

// NewDynamoCheckRepository는 새로운 검사 결과 레포지토리를 생성합니다.
func NewDynamoCheckRepository(client DynamoAPI, tableName string) *DynamoCheckRepository {
	if tableName == "" {
		tableName = model.TableNameChecks
	}
	return &DynamoCheckRepository{
		client:    client,
		tableName: tableName,
		now:       time.Now,
	}
}

// CreateTableIfNotExists는 검사 결과 테이블이 없을 경우 생성하고 TTL을 활성화합니다.
func (r *DynamoCheckRepository) CreateTableIfNotExists(ctx context.Context) error {
	exists, err := r.tableExists(ctx)
	if err != nil {
		return fmt.Errorf("테이블 존재 여부 확인 실패: %w", err)
	}

	// 테이블이 이미 존재하면 생성하지 않음
	if exists {
		return nil
	}

	_, err = r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String("CheckID"),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String("CheckID"),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	// 테이블 생성 완료될 때까지 대기
	waiter := dynamodb.NewTableExistsWaiter(r.client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	}, 2*time.Minute)
	if err != nil {
		return fmt.Errorf("테이블 생성 완료 대기 실패: %w", err)
	}

	_, err = r.client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(r.tableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String("ttl"),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("TTL 설정 실패: %w", err)
	}

	return nil
}

// tableExists는 테이블이 존재하는지 확인합니다.
func (r *DynamoCheckRepository) tableExists(ctx context.Context) (bool, error) {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// SaveCheck는 검사 결과를 저장합니다.
func (r *DynamoCheckRepository) SaveCheck(ctx context.Context, record *model.CheckRecord) error {
	if record == nil || record.CheckID == "" {
		return fmt.Errorf("검사 ID가 비어 있습니다")
	}

	item := *record
	if !item.ExpiresAt.IsZero() {
		item.TTL = item.ExpiresAt.Unix()
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("검사 결과 마샬 실패: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("검사 결과 저장 실패: %w", err)
	}

	return nil
}

// GetCheck는 검사 ID로 결과를 조회합니다.
// DynamoDB TTL 삭제는 지연될 수 있어 만료 여부를 직접 확인합니다.
func (r *DynamoCheckRepository) GetCheck(ctx context.Context, id string) (*model.CheckRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("검사 ID가 비어 있습니다")
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"CheckID": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("검사 결과 조회 실패: %w", err)
	}

	// 결과가 없는 경우
	if result.Item == nil {
		return nil, nil
	}

	var record model.CheckRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("검사 결과 언마샬 실패: %w", err)
	}

	if record.IsExpired(r.now()) {
		return nil, nil
	}

	return &record, nil
}
