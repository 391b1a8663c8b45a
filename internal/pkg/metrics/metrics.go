package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ストア操作の結果ラベル
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// ファイル読み込み結果ラベル
const (
	LoadLoaded  = "loaded"
	LoadMissing = "missing"
	LoadCorrupt = "corrupt"
)

// Metrics はアプリケーションのメトリクスを管理する
// nil の *Metrics に対する記録メソッドは何もしない
type Metrics struct {
	// ストア操作の総数（store, operation, result）
	StoreOperationsTotal *prometheus.CounterVec

	// 予約作成の総数（status: success, capacity_exceeded, not_found, duplicate, invalid, error）
	ReservationsTotal *prometheus.CounterVec

	// ホテルごとの予約済み客室数（hotel）
	HotelReservedRooms *prometheus.GaugeVec

	// 永続化ファイルの読み込み結果（store, outcome: loaded, missing, corrupt）
	StoreLoadsTotal *prometheus.CounterVec
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StoreOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_operations_total",
				Help: "Total number of store operations",
			},
			[]string{"store", "operation", "result"},
		),
		ReservationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_total",
				Help: "Total number of reservation attempts",
			},
			[]string{"status"},
		),
		HotelReservedRooms: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hotel_reserved_rooms",
				Help: "Current number of reserved rooms per hotel",
			},
			[]string{"hotel"},
		),
		StoreLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_loads_total",
				Help: "Total number of store file loads by outcome",
			},
			[]string{"store", "outcome"},
		),
	}

	// レジストリに登録
	reg.MustRegister(
		m.StoreOperationsTotal,
		m.ReservationsTotal,
		m.HotelReservedRooms,
		m.StoreLoadsTotal,
	)

	return m
}

// ObserveOperation はストア操作の結果を記録する
func (m *Metrics) ObserveOperation(store, operation string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.StoreOperationsTotal.WithLabelValues(store, operation, result).Inc()
}

// ObserveReservation は予約作成の結果を記録する
func (m *Metrics) ObserveReservation(status string) {
	if m == nil {
		return
	}
	m.ReservationsTotal.WithLabelValues(status).Inc()
}

// SetReservedRooms はホテルの予約済み客室数を記録する
func (m *Metrics) SetReservedRooms(hotel string, reserved int) {
	if m == nil {
		return
	}
	m.HotelReservedRooms.WithLabelValues(hotel).Set(float64(reserved))
}

// ForgetHotel は削除・改名されたホテルのゲージを取り除く
func (m *Metrics) ForgetHotel(hotel string) {
	if m == nil {
		return
	}
	m.HotelReservedRooms.DeleteLabelValues(hotel)
}

// ObserveLoad はファイル読み込み結果を記録する
func (m *Metrics) ObserveLoad(store, outcome string) {
	if m == nil {
		return
	}
	m.StoreLoadsTotal.WithLabelValues(store, outcome).Inc()
}

// WriteTextfile は node_exporter の textfile collector 向けにメトリクスを書き出す
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
