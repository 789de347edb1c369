package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

// State-slice attribute names. These are the fixed string keys the app
// persists under; each slice is an opaque JSON blob updated independently.
const (
	sliceAuth    = "auth"
	sliceBooking = "booking"
	sliceOrders  = "bookings"
)

type sessionItem struct {
	ID        string `dynamodbav:"id"`
	Auth      string `dynamodbav:"auth,omitempty"`
	Booking   string `dynamodbav:"booking,omitempty"`
	Orders    string `dynamodbav:"bookings,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists device-session state in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Each state slice lives in its own attribute so saving one slice never
// rewrites the others (serialize-on-change, not whole-state flushes).

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	it, err := toSessionItem(s)
	if err != nil {
		return entities.Session{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it)
}

func (r *SessionDynamoRepository) SaveAuth(ctx context.Context, id string, auth entities.AuthState) error {
	return r.saveSlice(ctx, id, sliceAuth, auth)
}

func (r *SessionDynamoRepository) SaveDraft(ctx context.Context, id string, draft entities.BookingDraft) error {
	return r.saveSlice(ctx, id, sliceBooking, draft)
}

func (r *SessionDynamoRepository) SaveOrders(ctx context.Context, id string, orders []entities.Order) error {
	return r.saveSlice(ctx, id, sliceOrders, orders)
}

func (r *SessionDynamoRepository) saveSlice(ctx context.Context, id, slice string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #slice = :payload, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payload":    &types.AttributeValueMemberS{Value: string(payload)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#slice":      slice,
			"#updated_at": "updated_at",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return errors.New("session not found")
		}
		return err
	}
	return nil
}

func toSessionItem(s entities.Session) (sessionItem, error) {
	auth, err := json.Marshal(s.Auth)
	if err != nil {
		return sessionItem{}, err
	}
	booking, err := json.Marshal(s.Draft)
	if err != nil {
		return sessionItem{}, err
	}
	orders, err := json.Marshal(s.Orders)
	if err != nil {
		return sessionItem{}, err
	}
	return sessionItem{
		ID:        s.ID,
		Auth:      string(auth),
		Booking:   string(booking),
		Orders:    string(orders),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSessionItem(it sessionItem) (entities.Session, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	s := entities.Session{
		ID:        it.ID,
		Draft:     entities.NewBookingDraft(),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.Auth != "" {
		if err := json.Unmarshal([]byte(it.Auth), &s.Auth); err != nil {
			return entities.Session{}, err
		}
	}
	if it.Booking != "" {
		if err := json.Unmarshal([]byte(it.Booking), &s.Draft); err != nil {
			return entities.Session{}, err
		}
	}
	if it.Orders != "" {
		if err := json.Unmarshal([]byte(it.Orders), &s.Orders); err != nil {
			return entities.Session{}, err
		}
	}
	return s, nil
}
