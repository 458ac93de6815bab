package render

// documentTemplate mirrors the printable table layout of the RPM document:
// centered header, five numbered sections, the nested per-session step table,
// and the two-party signature block. All styling is inline.
const documentTemplate = `<div id="rpm-table" style="background-color:#ffffff;color:#000000;font-family:Arial, sans-serif;width:100%">

<div style="text-align:center;margin-bottom:30px;border-bottom:3px solid #000000;padding-bottom:20px">
  <h1 style="font-size:18pt;font-weight:bold;text-transform:uppercase;margin:0 0 10px 0">RENCANA PELAKSANAAN PEMBELAJARAN (RPM)</h1>
  <div style="background-color:#000000;color:#ffffff;padding:10px 25px;display:inline-block;border-radius:4px">
    <p style="font-size:12pt;font-weight:bold;text-transform:uppercase;margin:0;font-style:italic">{{.Mapel}} &mdash; {{.Materi}}</p>
  </div>
  <p style="font-size:11pt;font-weight:bold;margin:15px 0 0 0;text-transform:uppercase">{{.SatuanPendidikan}} | TAHUN PELAJARAN {{.TahunPelajaran}}</p>
</div>

<table width="100%" border="1" cellpadding="0" cellspacing="0" style="border-collapse:collapse;width:100%;border:1.5px solid #000000">

<thead>
  <tr style="background-color:#1e3a8a">
    <th colspan="2" style="padding:12px 15px;text-align:left;color:#ffffff;font-weight:bold;font-size:11pt;border:1.5px solid #000000;text-transform:uppercase">01. IDENTITAS</th>
  </tr>
</thead>
<tbody>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Nama Satuan Pendidikan</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.SatuanPendidikan}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Mata Pelajaran</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.Mapel}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Elemen Kurikulum</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.Elemen}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Kelas / Semester</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.Kelas}} / {{.Semester}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Tahun Pelajaran</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.TahunPelajaran}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Sesi &amp; Durasi</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.JumlahPertemuan}} Pertemuan (@ {{.DurasiPertemuan}})</td>
  </tr>
</tbody>

<thead>
  <tr style="background-color:#064e3b">
    <th colspan="2" style="padding:12px 15px;text-align:left;color:#ffffff;font-weight:bold;font-size:11pt;border:1.5px solid #000000;text-transform:uppercase">02. IDENTIFIKASI</th>
  </tr>
</thead>
<tbody>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Murid (Karakteristik)</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.Murid}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Materi Pelajaran</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.Materi}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Capaian Dimensi Lulusan</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.DimensiLulusan}}</td>
  </tr>
</tbody>

<thead>
  <tr style="background-color:#991b1b">
    <th colspan="2" style="padding:12px 15px;text-align:left;color:#ffffff;font-weight:bold;font-size:11pt;border:1.5px solid #000000;text-transform:uppercase">03. DESAIN PEMBELAJARAN</th>
  </tr>
</thead>
<tbody>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Capaian Pembelajaran (CP)</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.CP}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Tujuan Pembelajaran (TP)</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.TP}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Lintas Disiplin Ilmu</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.LintasDisiplin}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Media Pembelajaran (Alat/Bahan)</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.MediaAjar}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Pemanfaatan Digital</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.PemanfaatanDigital}}</td>
  </tr>
</tbody>

<thead>
  <tr style="background-color:#9a3412">
    <th colspan="2" style="padding:12px 15px;text-align:left;color:#ffffff;font-weight:bold;font-size:11pt;border:1.5px solid #000000;text-transform:uppercase">04. PENGALAMAN BELAJAR</th>
  </tr>
</thead>
<tbody>
  <tr>
    <td colspan="2" style="padding:0">
      <table width="100%" border="1" cellpadding="0" cellspacing="0" style="border-collapse:collapse;width:100%">
        <thead style="background-color:#000000;color:#ffffff;font-size:10pt;font-weight:bold">
          <tr>
            <th style="padding:10px;width:10%;border:1px solid #ffffff">SESI</th>
            <th style="padding:10px;width:15%;border:1px solid #ffffff">BAGIAN</th>
            <th style="padding:10px;width:15%;border:1px solid #ffffff">SINTAKS</th>
            <th style="padding:10px;width:45%;border:1px solid #ffffff">AKTIVITAS MURID &amp; GURU</th>
            <th style="padding:10px;width:15%;border:1px solid #ffffff">PRINSIP 3P</th>
          </tr>
        </thead>
        <tbody>
{{- range .Sessions}}
          <tr style="background-color:#f1f5f9">
            <td colspan="5" style="border:1.5px solid #000000;padding:10px;text-align:center;font-weight:bold;font-size:10pt;text-transform:uppercase">PERTEMUAN KE-{{.MeetingNumber}} &mdash; MODEL: {{.Pedagogy}}</td>
          </tr>
{{- range .Steps}}
          <tr>
            <td style="border:1.5px solid #000000;padding:12px;text-align:center;vertical-align:middle;font-weight:bold">{{.MeetingNumber}}</td>
            <td style="border:1.5px solid #000000;padding:12px;text-align:center;font-size:9pt;font-weight:bold;text-transform:uppercase">{{.Kegiatan}}</td>
            <td style="border:1.5px solid #000000;padding:12px;text-align:center;font-size:9pt;font-style:italic;font-weight:bold">{{.Fase}}</td>
            <td style="border:1.5px solid #000000;padding:15px;font-size:11pt;text-align:justify;line-height:1.5">{{.Deskripsi}}</td>
            <td style="border:1.5px solid #000000;padding:8px;vertical-align:middle">
              <div style="text-align:center">
{{- range .Badges}}
                <div style="background-color:{{.Color}};color:{{.TextColor}};padding:4px 6px;border-radius:4px;font-size:8pt;font-weight:bold;margin-bottom:4px;border:1px solid rgba(0,0,0,0.1);display:block">{{.Label}}</div>
{{- end}}
              </div>
            </td>
          </tr>
{{- end}}
{{- end}}
        </tbody>
      </table>
    </td>
  </tr>
</tbody>

<thead>
  <tr style="background-color:#1e293b">
    <th colspan="2" style="padding:12px 15px;text-align:left;color:#ffffff;font-weight:bold;font-size:11pt;border:1.5px solid #000000;text-transform:uppercase">05. ASESMEN &amp; REFERENSI</th>
  </tr>
</thead>
<tbody>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Asesmen Pembelajaran</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">
      <strong>Asesmen Awal:</strong> {{.AsesmenAwal}}<br/><br/>
      <strong>Asesmen Proses:</strong> {{.AsesmenProses}}<br/><br/>
      <strong>Asesmen Akhir:</strong> {{.AsesmenAkhir}}
    </td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Referensi Materi &amp; Media Digital</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">
{{- if .References}}
      <ul style="padding-left:20px;margin:0">
{{- range .References}}
        <li style="margin-bottom:8px">
          <strong>[{{.Tipe}}] {{.Judul}}:</strong> <a href="{{.URL}}" style="color:#2563eb;text-decoration:underline">{{.URL}}</a><br/>
          <span style="font-size:9pt;color:#64748b">{{.Deskripsi}}</span>
        </li>
{{- end}}
      </ul>
{{- else}}
      Tidak ada referensi tambahan.
{{- end}}
    </td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Glosarium</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.Glosarium}}</td>
  </tr>
  <tr>
    <td style="padding:10px 15px;font-weight:bold;background-color:#f1f5f9;width:30%;border:1.5px solid #000000;font-size:10pt;text-transform:uppercase">Daftar Pustaka</td>
    <td style="padding:10px 15px;border:1.5px solid #000000;font-size:11pt;vertical-align:top;text-align:justify">{{.DaftarPustaka}}</td>
  </tr>
</tbody>
</table>

<table width="100%" style="margin-top:60px;border:none">
  <tr>
    <td width="50%" style="vertical-align:top;padding-left:40px">
      <p style="margin:0 0 5px 0;font-size:10pt;font-weight:bold;color:#64748b">MENGESAHKAN,</p>
      <p style="margin:0 0 80px 0;font-weight:bold;font-size:11pt">KEPALA SEKOLAH</p>
      <p style="margin:0;font-weight:bold;font-size:12pt">{{.KepalaSekolah}}</p>
      <p style="margin:5px 0 0 0;font-size:10pt">NIP. {{.NIPKepsek}}</p>
    </td>
    <td width="50%" style="vertical-align:top;padding-left:40px">
      <p style="margin:0 0 5px 0;font-size:10pt">{{.Tempat}}, {{.Tanggal}}</p>
      <p style="margin:0 0 80px 0;font-weight:bold;font-size:11pt">GURU MATA PELAJARAN</p>
      <p style="margin:0;font-weight:bold;font-size:12pt">{{.Guru}}</p>
      <p style="margin:5px 0 0 0;font-size:10pt">NIP. {{.NIPGuru}}</p>
    </td>
  </tr>
</table>

</div>
`
