package emotion

import "context"

// Classifier 为文本计算各情绪的得分
type Classifier interface {
	Classify(ctx context.Context, text string) ([]Score, error)
}

// ClassifierFunc 将普通函数适配为 Classifier
type ClassifierFunc func(ctx context.Context, text string) ([]Score, error)

// Classify 实现 Classifier
func (f ClassifierFunc) Classify(ctx context.Context, text string) ([]Score, error) {
	return f(ctx, text)
}
