package store

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"NZWalks-API/internal/domain/model"
	fsclient "NZWalks-API/internal/infrastructure/firestore"
)

// firestoreTable 種別ごとに1コレクション、ドキュメントID = レコードID
type firestoreTable[T any, PT Entity[T]] struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore Firestore上のストアを作成
func NewFirestoreStore(fc *fsclient.FirestoreClient) *Store {
	client := fc.GetClient()
	return &Store{
		Regions:          &firestoreTable[model.Region, *model.Region]{client: client, collection: TableRegions},
		WalkDifficulties: &firestoreTable[model.WalkDifficulty, *model.WalkDifficulty]{client: client, collection: TableWalkDifficulties},
		Walks:            &firestoreTable[model.Walk, *model.Walk]{client: client, collection: TableWalks},
		ping:             fc.HealthCheck,
		close:            fc.Close,
	}
}

func (t *firestoreTable[T, PT]) doc(id string) *firestore.DocumentRef {
	return t.client.Collection(t.collection).Doc(id)
}

func (t *firestoreTable[T, PT]) Insert(ctx context.Context, rec *T) (*T, error) {
	stored := prepareInsert[T, PT](rec)

	if _, err := t.doc(PT(&stored).GetID()).Set(ctx, stored); err != nil {
		return nil, storageError(t.collection+"の保存に失敗しました", err)
	}
	return &stored, nil
}

func (t *firestoreTable[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	snap, err := t.doc(id).Get(ctx)
	if err != nil {
		return nil, t.docError(t.collection+"の取得に失敗しました", err)
	}
	return t.decode(snap)
}

func (t *firestoreTable[T, PT]) ListAll(ctx context.Context) ([]T, error) {
	snaps, err := t.client.Collection(t.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, storageError(t.collection+"の一覧取得に失敗しました", err)
	}

	records := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		rec, err := t.decode(snap)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// Update 存在確認と書き込みを1トランザクションで行う
func (t *firestoreTable[T, PT]) Update(ctx context.Context, id string, patch *T) (*T, error) {
	ref := t.doc(id)

	var updated *T
	err := t.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		current, err := t.decode(snap)
		if err != nil {
			return err
		}
		PT(current).ApplyUpdate(patch)
		PT(current).SetID(id)
		if err := tx.Set(ref, *current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, t.docError(t.collection+"の更新に失敗しました", err)
	}
	return updated, nil
}

// Remove 読み出しと削除を1トランザクションで行う
func (t *firestoreTable[T, PT]) Remove(ctx context.Context, id string) (*T, error) {
	ref := t.doc(id)

	var removed *T
	err := t.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		current, err := t.decode(snap)
		if err != nil {
			return err
		}
		if err := tx.Delete(ref); err != nil {
			return err
		}
		removed = current
		return nil
	})
	if err != nil {
		return nil, t.docError(t.collection+"の削除に失敗しました", err)
	}
	return removed, nil
}

func (t *firestoreTable[T, PT]) decode(snap *firestore.DocumentSnapshot) (*T, error) {
	var rec T
	if err := snap.DataTo(&rec); err != nil {
		return nil, storageError("データの変換に失敗しました", err)
	}
	PT(&rec).SetID(snap.Ref.ID)
	return &rec, nil
}

func (t *firestoreTable[T, PT]) docError(op string, err error) error {
	if errors.Is(err, model.ErrNotFound) || status.Code(err) == codes.NotFound {
		return model.ErrNotFound
	}
	return storageError(op, err)
}
