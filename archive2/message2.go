package archive2

// message2 is the RDA Status Data record (User 3.2.4.6). It is consumed
// only as a last-resort source of the file's VCP number, used when a file
// carries neither a Message 31 VOL block nor a Message 5 record.
type message2 struct {
	RDAStatus                uint16
	OperabilityStatus        uint16
	ControlStatus            uint16
	AuxPowerGeneratorState   uint16
	AvgTxPower               uint16
	HorizRefCalibCorr        uint16
	DataTxEnabled            uint16
	VolumeCoveragePatternNum uint16
}

func decodeMessage2(r *reader) (message2, error) {
	var m message2
	var err error
	if m.RDAStatus, err = r.u16(); err != nil {
		return m, err
	}
	if m.OperabilityStatus, err = r.u16(); err != nil {
		return m, err
	}
	if m.ControlStatus, err = r.u16(); err != nil {
		return m, err
	}
	if m.AuxPowerGeneratorState, err = r.u16(); err != nil {
		return m, err
	}
	if m.AvgTxPower, err = r.u16(); err != nil {
		return m, err
	}
	if m.HorizRefCalibCorr, err = r.u16(); err != nil {
		return m, err
	}
	if m.DataTxEnabled, err = r.u16(); err != nil {
		return m, err
	}
	if m.VolumeCoveragePatternNum, err = r.u16(); err != nil {
		return m, err
	}
	return m, nil
}
