package _interface

// ServiceContainer는 모든 서비스 인스턴스를 보관합니다
type ServiceContainer struct {
	Classifier       ChannelClassifier
	CheckService     CheckService
	CheckRepository  CheckRepository
	SourceCategories int
}
