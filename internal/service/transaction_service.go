package service

import (
	"camrent-backend/internal/model"
	"camrent-backend/internal/repository"
)

const transactionsPerPage = 4

type TransactionPage struct {
	Transactions      []model.Transaction `json:"transactions"`
	CurrentPage       int                 `json:"currentPage"`
	TotalPages        int                 `json:"totalPages"`
	TotalTransactions int64               `json:"totalTransactions"`
}

type TransactionService interface {
	GetPage(page int) (*TransactionPage, error)
	GetByID(transactionID string) (*model.Transaction, error)
	GetByUser(userID uint) ([]model.Transaction, error)
	GetStats() (*repository.TransactionStats, error)
}

type transactionService struct {
	txRepo repository.TransactionRepository
}

func NewTransactionService(txRepo repository.TransactionRepository) TransactionService {
	return &transactionService{txRepo: txRepo}
}

func (s *transactionService) GetPage(page int) (*TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * transactionsPerPage

	txs, total, err := s.txRepo.FindPage(transactionsPerPage, offset)
	if err != nil {
		return nil, err
	}
	return &TransactionPage{
		Transactions:      txs,
		CurrentPage:       page,
		TotalPages:        totalPages(total, transactionsPerPage),
		TotalTransactions: total,
	}, nil
}

func (s *transactionService) GetByID(transactionID string) (*model.Transaction, error) {
	return s.txRepo.FindByID(transactionID)
}

func (s *transactionService) GetByUser(userID uint) ([]model.Transaction, error) {
	return s.txRepo.FindByUser(userID)
}

func (s *transactionService) GetStats() (*repository.TransactionStats, error) {
	return s.txRepo.Aggregate()
}
