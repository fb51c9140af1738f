package domain

// statusProgress maps every recognized status to a delivery-progress
// percentage. The values are fixed data consumed by external reporting, not
// derived: do not retune them without coordinating with those consumers.
// Progress is a snapshot indicator for the status a shipment is in right now,
// not a non-decreasing counter — Cancelled drops to 0 even when reached from
// Out for Delivery.
var statusProgress = map[ShipmentStatus]int{
	StatusPending:             5,
	StatusAwaitingPayment:     10,
	StatusPaymentConfirmed:    20,
	StatusProcessing:          30,
	StatusReadyForPickup:      35,
	StatusDriverEnRoute:       40,
	StatusPickedUp:            45,
	StatusAtWarehouse:         50,
	StatusInTransit:           60,
	StatusDepartedFacility:    65,
	StatusArrivedAtFacility:   70,
	StatusOutForDelivery:      85,
	StatusDelivered:           100,
	StatusReturnedToSender:    0,
	StatusCancelled:           0,
	StatusOnHold:              15,
	StatusDelayed:             50,
	StatusWeatherDelay:        50,
	StatusAddressIssue:        40,
	StatusCustomsHold:         45,
	StatusInspectionRequired:  45,
	StatusPaymentVerification: 10,
	StatusLostPackage:         0,
	StatusDamagedPackage:      0,
}

// statusDescription holds the customer-facing sentence for each status, used
// when synthesizing tracking-event descriptions.
var statusDescription = map[ShipmentStatus]string{
	StatusPending:             "Shipment registered and pending processing",
	StatusAwaitingPayment:     "Awaiting payment confirmation",
	StatusPaymentConfirmed:    "Payment confirmed",
	StatusProcessing:          "Shipment is being processed",
	StatusReadyForPickup:      "Package is ready for pickup",
	StatusDriverEnRoute:       "Driver is en route to collect the package",
	StatusPickedUp:            "Package has been picked up",
	StatusAtWarehouse:         "Package arrived at warehouse",
	StatusInTransit:           "Package is in transit",
	StatusDepartedFacility:    "Package departed the facility",
	StatusArrivedAtFacility:   "Package arrived at a facility",
	StatusOutForDelivery:      "Package is out for delivery",
	StatusDelivered:           "Package has been delivered",
	StatusReturnedToSender:    "Package was returned to sender",
	StatusCancelled:           "Shipment was cancelled",
	StatusOnHold:              "Shipment is on hold",
	StatusDelayed:             "Shipment is delayed",
	StatusWeatherDelay:        "Shipment delayed due to weather conditions",
	StatusAddressIssue:        "Delivery delayed due to an address issue",
	StatusCustomsHold:         "Package is held at customs",
	StatusInspectionRequired:  "Package requires inspection",
	StatusPaymentVerification: "Payment verification is required",
	StatusLostPackage:         "Package has been reported lost",
	StatusDamagedPackage:      "Package has been reported damaged",
}

// ProgressFor returns the delivery-progress percentage for a status.
// The catalog is advisory, not a validity gate: unrecognized statuses resolve
// to 0 rather than erroring.
func ProgressFor(status ShipmentStatus) int {
	if p, ok := statusProgress[status]; ok {
		return p
	}
	return 0
}

// DescriptionFor returns the customer-facing description for a status.
// Unrecognized statuses fall back to the raw status text.
func DescriptionFor(status ShipmentStatus) string {
	if d, ok := statusDescription[status]; ok {
		return d
	}
	return "Status updated to " + string(status)
}
